package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockGenerator is a deterministic offline implementation for local runs
// without an API key. It emits filler prose and respects the word budget.
type MockGenerator struct {
	// SegmentWords is the word count of each emitted continuation.
	// Zero means the default of 120.
	SegmentWords int
}

const mockDefaultSegmentWords = 120

func (m MockGenerator) Generate(_ context.Context, req Request) (Continuation, error) {
	size := m.SegmentWords
	if size <= 0 {
		size = mockDefaultSegmentWords
	}
	if size > req.WordsRemaining {
		size = req.WordsRemaining
	}

	var sb strings.Builder
	if req.Opening {
		sb.WriteString(fmt.Sprintf("What if everything you knew about %s was about to change?", req.Topic))
	} else {
		sb.WriteString(fmt.Sprintf("Continuing our look at %s, the next point builds on what came before.", req.Topic))
	}
	for len(strings.Fields(sb.String())) < size {
		sb.WriteString(" Each sentence here stands in for real generated narration about the topic.")
	}
	text := strings.Join(strings.Fields(sb.String())[:size], " ")

	completed := req.WordsRemaining-size <= 50
	segment := SegmentBody
	switch {
	case req.Opening:
		segment = SegmentHook
	case completed:
		segment = SegmentConclusion
	}

	return Continuation{
		Text:        text,
		Summary:     fmt.Sprintf("Added %d placeholder words about %s.", size, req.Topic),
		Completed:   completed,
		SegmentType: segment,
	}, nil
}
