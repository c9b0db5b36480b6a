package llmclient

import (
	"context"
	"fmt"
)

// Providers.
const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// Config selects and parameterizes a generation backend.
type Config struct {
	Provider string
	Host     string
	Port     string
	Model    string
}

// New constructs the generator named by cfg.Provider.
func New(ctx context.Context, cfg Config) (Generator, error) {
	switch cfg.Provider {
	case ProviderOllama, "":
		return NewOllamaClient(cfg.Host, cfg.Port, cfg.Model)
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.Model)
	default:
		return nil, fmt.Errorf("llmclient: unknown provider %q", cfg.Provider)
	}
}
