// Package llm selects the summary generator for the configured provider.
package llm

import (
	"context"
	"fmt"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/moodjournal-backend/internal/adapter/llm/openai"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// Generator produces a completion for a system and user prompt.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

// New returns the generator for cfg.Provider. Without an API key it returns
// a generator that always fails with domain.ErrUnavailable, so the rest of
// the service keeps working.
func New(cfg config.LLMConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return Disabled{model: cfg.Model}, nil
	}

	switch cfg.Provider {
	case config.ProviderAnthropic:
		return anthropic.New(cfg), nil
	case config.ProviderOpenAI, config.ProviderTogether:
		return openai.New(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// Disabled is the generator used when no API key is configured.
type Disabled struct {
	model string
}

func (d Disabled) Model() string { return d.model }

func (d Disabled) Generate(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("llm api key not configured: %w", domain.ErrUnavailable)
}
