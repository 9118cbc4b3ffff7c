package generator

import (
	"context"
	"strings"
	"testing"
)

func TestMockGeneratorRespectsBudget(t *testing.T) {
	c, err := MockGenerator{}.Generate(context.Background(), Request{
		Topic:          "volcanoes",
		MaxWords:       100,
		WordsRemaining: 60,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got := len(strings.Fields(c.Text)); got > 60 {
		t.Fatalf("mock exceeded remaining budget: %d words", got)
	}
	if !c.Completed {
		t.Fatal("expected completion when budget is nearly exhausted")
	}
	if c.Summary == "" {
		t.Fatal("expected a non-empty summary")
	}
}

func TestMockGeneratorOpeningIsHook(t *testing.T) {
	c, err := MockGenerator{SegmentWords: 40}.Generate(context.Background(), Request{
		Topic:          "volcanoes",
		MaxWords:       1000,
		WordsRemaining: 1000,
		Opening:        true,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if c.SegmentType != SegmentHook {
		t.Fatalf("expected hook segment, got %q", c.SegmentType)
	}
	if c.Completed {
		t.Fatal("expected more passes with 960 words of budget left")
	}
	if got := len(strings.Fields(c.Text)); got != 40 {
		t.Fatalf("expected exactly 40 words, got %d", got)
	}
}
