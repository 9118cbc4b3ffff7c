package assembler

import (
	"strings"

	"github.com/minhyannv/scriptforge-go/pkg/generator"
)

const (
	// minWords and maxWordsLimit bound the accepted word ceiling.
	minWords      = 10
	maxWordsLimit = 40000

	// maxIterations is the safety valve against runaway loops.
	maxIterations = 20
	// maxGenerationFailures is how many failed generation calls are
	// tolerated before the run settles for what it has.
	maxGenerationFailures = 3
	// completionSlack forces completion once this many or fewer words of
	// budget remain, regardless of the service's own opinion.
	completionSlack = 50
)

// State is one snapshot of assembly progress. It is threaded by value; every
// pass derives the next snapshot from the previous one.
type State struct {
	Topic    string
	MaxWords int

	WordCount      int
	WordsRemaining int
	Script         string
	Summary        string

	Completed   bool
	SegmentType generator.SegmentType
	Iterations  int
	ErrorCount  int
}

func newState(topic string, maxWords int) State {
	return State{
		Topic:          topic,
		MaxWords:       maxWords,
		WordsRemaining: maxWords,
	}
}

// request renders the snapshot into the next generation request.
func (s State) request() generator.Request {
	return generator.Request{
		Topic:          s.Topic,
		WordCount:      s.WordCount,
		MaxWords:       s.MaxWords,
		WordsRemaining: s.WordsRemaining,
		Summary:        s.Summary,
		Opening:        s.Iterations == 0,
	}
}

// applyContinuation derives the next snapshot from an accepted continuation.
// A continuation that overshoots the budget is truncated to the remaining
// budget before this call and the word count is clamped to MaxWords exactly.
func (s State) applyContinuation(c generator.Continuation) State {
	next := s

	text := c.Text
	if s.WordCount+countWords(text) > s.MaxWords {
		text = truncateWords(text, s.WordsRemaining)
		next.WordCount = s.MaxWords
	} else {
		next.WordCount = s.WordCount + countWords(text)
	}
	next.WordsRemaining = s.MaxWords - next.WordCount
	if next.WordsRemaining < 0 {
		next.WordsRemaining = 0
	}

	next.Script = s.Script + text + " "
	// The summary of an overshot continuation is kept whole; only the
	// script text is truncated.
	next.Summary = s.Summary + c.Summary + " "

	next.Completed = s.Completed || c.Completed || next.WordsRemaining <= completionSlack
	next.SegmentType = c.SegmentType
	next.Iterations = s.Iterations + 1
	return next
}

// applyFailure derives the next snapshot after a failed generation call.
// Accumulated text is untouched; the third failure forces completion.
func (s State) applyFailure() State {
	next := s
	next.ErrorCount = s.ErrorCount + 1
	next.Iterations = s.Iterations + 1
	if next.ErrorCount >= maxGenerationFailures {
		next.Completed = true
	}
	return next
}

// done is the continuation predicate, evaluated after every pass.
func (s State) done() bool {
	return s.Completed || s.WordsRemaining <= 0 || s.Iterations > maxIterations
}

func countWords(s string) int {
	return len(strings.Fields(s))
}

// truncateWords keeps the first n whitespace-separated words of s.
func truncateWords(s string, n int) string {
	if n <= 0 {
		return ""
	}
	fields := strings.Fields(s)
	if n >= len(fields) {
		return s
	}
	return strings.Join(fields[:n], " ")
}
