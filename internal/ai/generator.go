// Package ai wraps the external text-generation endpoint. Calls are
// single-shot with an output-length ceiling; there is no retry policy and
// callers treat failure as a degraded, non-fatal outcome.
package ai

import (
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var ErrDisabled = errors.New("ai: text generation not configured")

type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type Gemini struct {
	model llms.Model
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &Gemini{model: llm}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.model, prompt, llms.WithMaxTokens(maxTokens))
}

// Disabled stands in when no API key is configured; every call fails and
// enrichment degrades to the user's draft.
type Disabled struct{}

func (Disabled) Generate(context.Context, string, int) (string, error) {
	return "", ErrDisabled
}
