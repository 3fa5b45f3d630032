package services

import (
	"context"
	"fmt"
	"time"

	"alfredoptarigan/resume-refiner/internal/config"
)

const (
	systemInstruction     = "You are a helpful AI assistant specializing in resume optimization and interview preparation."
	generationTemperature = 0.7
	generationMaxTokens   = 2000
)

// Generator issues a single text completion against a language model.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
	// Ready reports whether the generator can serve requests at all.
	Ready() error
}

// NewGenerator builds the provider selected by cfg.Provider. A missing
// credential yields an error wrapping ErrServiceUnavailable.
func NewGenerator(ctx context.Context, cfg config.GenerationConfig) (Generator, error) {
	switch cfg.Provider {
	case "", "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY environment variable is not set", ErrServiceUnavailable)
		}
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.Timeout), nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY environment variable is not set", ErrServiceUnavailable)
		}
		return NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, cfg.Timeout)
	default:
		return nil, fmt.Errorf("%w: unknown LLM provider %q", ErrServiceUnavailable, cfg.Provider)
	}
}

type unavailableGenerator struct {
	err error
}

// NewUnavailableGenerator stands in for a provider that could not be
// configured; every call fails with err.
func NewUnavailableGenerator(err error) Generator {
	return &unavailableGenerator{err: err}
}

func (u *unavailableGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	return "", u.err
}

func (u *unavailableGenerator) Ready() error {
	return u.err
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
