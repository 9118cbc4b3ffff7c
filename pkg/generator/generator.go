// Package generator abstracts the text generation service behind a narrow
// interface so the assembler loop can run against a deterministic fake.
package generator

import "context"

// SegmentType classifies the narrative role of one continuation.
type SegmentType string

const (
	SegmentHook       SegmentType = "hook"
	SegmentIntro      SegmentType = "intro"
	SegmentBody       SegmentType = "body"
	SegmentConclusion SegmentType = "conclusion"
)

// ParseSegmentType maps a service-reported tag to a known segment type.
// Unknown tags are discarded rather than propagated.
func ParseSegmentType(s string) SegmentType {
	switch SegmentType(s) {
	case SegmentHook, SegmentIntro, SegmentBody, SegmentConclusion:
		return SegmentType(s)
	default:
		return ""
	}
}

// Request describes the progress snapshot sent to the service for one pass.
type Request struct {
	Topic          string
	WordCount      int
	MaxWords       int
	WordsRemaining int
	// Summary is the accumulated compressed context of everything written
	// so far; empty on the opening pass.
	Summary string
	// Opening marks the first pass, which asks for an attention-grabbing
	// hook instead of a continuation.
	Opening bool
}

// Continuation is the structured result of one generation call.
type Continuation struct {
	Text      string
	Summary   string
	Completed bool
	// SegmentType is optional; empty when the service reported none.
	SegmentType SegmentType
}

// Generator produces one script continuation per call.
type Generator interface {
	Generate(ctx context.Context, req Request) (Continuation, error)
}
