// Package llm generates short coaching texts with a hosted language model.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// ErrDisabled is returned by New when no provider is configured.
var ErrDisabled = errors.New("llm disabled")

// TextGenerator turns a prompt into a single text answer.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Model() string
}

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// New returns the generator selected by cfg.Provider.
func New(ctx context.Context, cfg Config) (TextGenerator, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" || provider == ProviderNone || cfg.APIKey == "" {
		return nil, ErrDisabled
	}

	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	}
	return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
}

// CleanJSON strips markdown code fences some models wrap around JSON output.
func CleanJSON(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
