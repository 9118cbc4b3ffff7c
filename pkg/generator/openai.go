package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	configpkg "github.com/minhyannv/scriptforge-go/pkg/config"
)

// OpenAIGenerator implements Generator using the official openai-go SDK
// (chat completions).
type OpenAIGenerator struct {
	model  string
	client openai.Client
}

// NewOpenAIGenerator builds a generator from runtime configuration.
func NewOpenAIGenerator(cfg configpkg.Config) (*OpenAIGenerator, error) {
	cfg = configpkg.Normalize(cfg)
	if cfg.APIKey == "" {
		return nil, errors.New("APIKey is not set")
	}
	if cfg.Model == "" {
		return nil, errors.New("Model is not set")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIGenerator{
		model:  cfg.Model,
		client: openai.NewClient(opts...),
	}, nil
}

// Generate performs one model completion request and decodes the structured
// continuation from it.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (Continuation, error) {
	p := BuildPrompt(req)
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.System),
			openai.UserMessage(p.User),
		},
	})
	if err != nil {
		return Continuation{}, err
	}
	if len(completion.Choices) == 0 {
		return Continuation{}, errors.New("empty completion choices")
	}
	return parseContinuation(completion.Choices[0].Message.Content)
}

// continuationWire mirrors the JSON object the system prompt demands.
type continuationWire struct {
	Continuation string `json:"continuation"`
	Summary      string `json:"summary"`
	Completed    bool   `json:"completed"`
	SegmentType  string `json:"segment_type"`
}

// parseContinuation decodes a model response into a Continuation. A response
// that is not the demanded JSON object, or that omits a required field, is a
// generation failure and counts against the retry budget.
func parseContinuation(raw string) (Continuation, error) {
	body := stripCodeFence(strings.TrimSpace(raw))
	var wire continuationWire
	if err := json.Unmarshal([]byte(body), &wire); err != nil {
		return Continuation{}, fmt.Errorf("decode continuation: %w", err)
	}
	if strings.TrimSpace(wire.Continuation) == "" {
		return Continuation{}, errors.New("continuation text is missing")
	}
	if strings.TrimSpace(wire.Summary) == "" {
		return Continuation{}, errors.New("continuation summary is missing")
	}
	return Continuation{
		Text:        wire.Continuation,
		Summary:     wire.Summary,
		Completed:   wire.Completed,
		SegmentType: ParseSegmentType(strings.TrimSpace(wire.SegmentType)),
	}, nil
}

// stripCodeFence unwraps a ``` or ```json fenced block, which some models
// emit despite the prompt instructions.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
