package services

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Completer is the language-model capability: one prompt in, raw text out.
// No streaming, no function calling. The extractor and responder depend on
// this interface so tests can swap in a deterministic stub.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLMService wraps the Gemini client. The client is created once and reused
// across turns.
type LLMService struct {
	client llms.Model
}

func NewLLMService(ctx context.Context, apiKey string) (*LLMService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-1.5-flash"),
	)
	if err != nil {
		return nil, err
	}
	return &LLMService{client: llm}, nil
}

func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
}
