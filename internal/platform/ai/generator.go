package ai

import (
	"context"
	"fmt"

	"github.com/radreport/radreport/internal/config"
)

// Generator is the text-generation collaborator: prompt in, plain text
// out. Implementations must honor context cancellation so callers can
// impose timeouts.
type Generator interface {
	Generate(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}

// NewGenerator builds the provider selected by configuration. Provider
// "none" returns a disabled generator that fails every call with a clear
// message instead of panicking at wiring time.
func NewGenerator(cfg *config.Config) (Generator, error) {
	switch cfg.AIProvider {
	case "openai":
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case "anthropic":
		return NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	case "none":
		return disabledGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
}

type disabledGenerator struct{}

func (disabledGenerator) Generate(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	return "", fmt.Errorf("ai generation is disabled (AI_PROVIDER=none)")
}
