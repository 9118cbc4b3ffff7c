// Package assembler implements the bounded loop that turns repeated
// generation calls into a single script under a word budget.
package assembler

import (
	"context"
	"fmt"
	"math"
	"strings"

	configpkg "github.com/minhyannv/scriptforge-go/pkg/config"
	"github.com/minhyannv/scriptforge-go/pkg/generator"
	loggerpkg "github.com/minhyannv/scriptforge-go/pkg/logger"
)

// Assembler drives the generation service until the script is complete, the
// budget is exhausted, or a safety ceiling is hit.
type Assembler struct {
	cfg     configpkg.Config
	gen     generator.Generator
	logger  loggerpkg.Logger
	verbose bool
}

// Result is the terminal value of one assembly run. Success is false only
// for validation and construction problems; an aborted run still returns its
// accumulated script with Success true.
type Result struct {
	Success    bool
	Script     string
	WordCount  int
	Iterations int
	// FinalType is the segment type of the last accepted continuation,
	// empty when the service never reported one.
	FinalType generator.SegmentType
	// Efficiency is the produced share of the budget, in whole percent.
	Efficiency int
	// Err carries the failure message when Success is false.
	Err string
}

// New initializes an Assembler with the provided config and dependencies.
// Without WithGenerator the OpenAI-backed generator is built, which requires
// an API key and model.
func New(cfg configpkg.Config, opts ...Option) (*Assembler, error) {
	cfg = configpkg.Normalize(cfg)
	deps := assemblerDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	gen := deps.generator
	if gen == nil {
		g, err := generator.NewOpenAIGenerator(cfg)
		if err != nil {
			return nil, fmt.Errorf("build generator: %w", err)
		}
		gen = g
	}

	return &Assembler{
		cfg:     cfg,
		gen:     gen,
		logger:  deps.logger,
		verbose: cfg.Verbose,
	}, nil
}

// Run builds an Assembler from cfg and executes one assembly run.
// Construction problems surface as a failure Result rather than an error, so
// the caller always receives a well-formed Result.
func Run(ctx context.Context, cfg configpkg.Config, topic string, maxWords int, opts ...Option) Result {
	asm, err := New(cfg, opts...)
	if err != nil {
		return failure(err.Error())
	}
	return asm.Run(ctx, topic, maxWords)
}

// Run assembles a script on topic under the maxWords budget. It never
// returns an error; every failure path resolves into the Result.
func (a *Assembler) Run(ctx context.Context, topic string, maxWords int) Result {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return failure("topic is required")
	}
	if maxWords < minWords || maxWords > maxWordsLimit {
		return failure(fmt.Sprintf("max words must be between %d and %d, got %d", minWords, maxWordsLimit, maxWords))
	}

	state := newState(topic, maxWords)
	for !state.done() {
		a.debugf("[verbose] pass %d: requesting continuation, remaining=%d", state.Iterations+1, state.WordsRemaining)
		cont, err := a.gen.Generate(ctx, state.request())
		if err != nil {
			state = state.applyFailure()
			loggerpkg.Warn(a.logger, "generation failed", map[string]any{
				"error":    err.Error(),
				"failures": state.ErrorCount,
			})
			continue
		}

		state = state.applyContinuation(cont)
		loggerpkg.Debug(a.verbose, a.logger, "continuation accepted", map[string]any{
			"pass":      state.Iterations,
			"words":     state.WordCount,
			"remaining": state.WordsRemaining,
			"segment":   string(state.SegmentType),
			"completed": state.Completed,
		})
	}

	return Result{
		Success:    true,
		Script:     strings.TrimSpace(state.Script),
		WordCount:  state.WordCount,
		Iterations: state.Iterations,
		FinalType:  state.SegmentType,
		Efficiency: int(math.Round(100 * float64(state.WordCount) / float64(maxWords))),
	}
}

func failure(msg string) Result {
	return Result{Err: msg}
}

func (a *Assembler) debugf(format string, args ...any) {
	loggerpkg.Debugf(a.verbose, a.logger, format, args...)
}
