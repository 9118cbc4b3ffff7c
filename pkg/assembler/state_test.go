package assembler

import (
	"strings"
	"testing"

	"github.com/minhyannv/scriptforge-go/pkg/generator"
)

// wordsOfLength builds a continuation text with exactly n words.
func wordsOfLength(n int) string {
	fields := make([]string, n)
	for i := range fields {
		fields[i] = "word"
	}
	return strings.Join(fields, " ")
}

func TestApplyContinuationKeepsWordInvariant(t *testing.T) {
	state := newState("topic", 100)
	state = state.applyContinuation(generator.Continuation{
		Text:    wordsOfLength(40),
		Summary: "first part",
	})

	if state.WordCount != 40 {
		t.Fatalf("expected word count 40, got %d", state.WordCount)
	}
	if state.WordCount+state.WordsRemaining != state.MaxWords {
		t.Fatalf("invariant broken: %d + %d != %d", state.WordCount, state.WordsRemaining, state.MaxWords)
	}
	if state.Completed {
		t.Fatal("expected run to continue with 60 words remaining")
	}
	if state.Iterations != 1 {
		t.Fatalf("expected 1 iteration, got %d", state.Iterations)
	}
}

func TestApplyContinuationTruncatesOvershoot(t *testing.T) {
	state := newState("topic", 100)
	state = state.applyContinuation(generator.Continuation{Text: wordsOfLength(40), Summary: "a"})
	state = state.applyContinuation(generator.Continuation{Text: wordsOfLength(70), Summary: "b"})

	if state.WordCount != 100 {
		t.Fatalf("expected clamped word count 100, got %d", state.WordCount)
	}
	if state.WordsRemaining != 0 {
		t.Fatalf("expected 0 words remaining, got %d", state.WordsRemaining)
	}
	if !state.Completed {
		t.Fatal("expected forced completion at exhausted budget")
	}
	if got := len(strings.Fields(state.Script)); got != 100 {
		t.Fatalf("expected script of exactly 100 words, got %d", got)
	}
}

func TestApplyContinuationKeepsSummaryWholeOnTruncation(t *testing.T) {
	state := newState("topic", 20)
	state = state.applyContinuation(generator.Continuation{
		Text:    wordsOfLength(50),
		Summary: "summary stays intact",
	})

	if !strings.Contains(state.Summary, "summary stays intact") {
		t.Fatalf("summary was altered: %q", state.Summary)
	}
	if got := len(strings.Fields(state.Script)); got != 20 {
		t.Fatalf("expected truncation to 20 words, got %d", got)
	}
}

func TestApplyContinuationForcesCompletionNearBudget(t *testing.T) {
	state := newState("topic", 100)
	state = state.applyContinuation(generator.Continuation{
		Text:    wordsOfLength(55),
		Summary: "most of it",
	})

	if state.WordsRemaining != 45 {
		t.Fatalf("expected 45 words remaining, got %d", state.WordsRemaining)
	}
	if !state.Completed {
		t.Fatal("expected forced completion with fewer than 50 words remaining")
	}
}

func TestApplyContinuationCompletedIsOneWay(t *testing.T) {
	state := newState("topic", 1000)
	state = state.applyContinuation(generator.Continuation{Text: wordsOfLength(10), Summary: "s", Completed: true})
	if !state.Completed {
		t.Fatal("expected completion from service flag")
	}

	state = state.applyContinuation(generator.Continuation{Text: wordsOfLength(10), Summary: "s"})
	if !state.Completed {
		t.Fatal("completed flag must never revert")
	}
}

func TestApplyFailureLeavesAccumulatorsUntouched(t *testing.T) {
	state := newState("topic", 1000)
	state = state.applyContinuation(generator.Continuation{Text: wordsOfLength(30), Summary: "opening"})

	failed := state.applyFailure()
	if failed.Script != state.Script || failed.Summary != state.Summary {
		t.Fatal("failed pass must not change accumulated text")
	}
	if failed.WordCount != state.WordCount {
		t.Fatalf("failed pass changed word count: %d -> %d", state.WordCount, failed.WordCount)
	}
	if failed.ErrorCount != 1 {
		t.Fatalf("expected error count 1, got %d", failed.ErrorCount)
	}
	if failed.Completed {
		t.Fatal("single failure must not force completion")
	}
}

func TestThirdFailureForcesCompletion(t *testing.T) {
	state := newState("topic", 1000)
	for i := 0; i < 3; i++ {
		state = state.applyFailure()
	}
	if state.ErrorCount != 3 {
		t.Fatalf("expected error count 3, got %d", state.ErrorCount)
	}
	if !state.Completed {
		t.Fatal("expected forced completion after third failure")
	}
}

func TestRequestMarksOpeningPassOnly(t *testing.T) {
	state := newState("topic", 100)
	if !state.request().Opening {
		t.Fatal("first pass must request an opening")
	}

	state = state.applyContinuation(generator.Continuation{Text: wordsOfLength(10), Summary: "s"})
	req := state.request()
	if req.Opening {
		t.Fatal("subsequent passes must request continuations")
	}
	if req.WordCount != 10 || req.WordsRemaining != 90 {
		t.Fatalf("unexpected counters in request: %+v", req)
	}
}

func TestTruncateWords(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"one two three", 2, "one two"},
		{"one two three", 3, "one two three"},
		{"one two three", 5, "one two three"},
		{"  spaced \t out\nwords ", 2, "spaced out"},
		{"one two", 0, ""},
	}
	for _, tc := range cases {
		if got := truncateWords(tc.in, tc.n); got != tc.want {
			t.Fatalf("truncateWords(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestCountWordsSplitsOnWhitespaceRuns(t *testing.T) {
	if got := countWords("one\t two\n\nthree  four "); got != 4 {
		t.Fatalf("expected 4 words, got %d", got)
	}
	if got := countWords("   "); got != 0 {
		t.Fatalf("expected 0 words for blank text, got %d", got)
	}
}
