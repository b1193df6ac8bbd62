// Package generation provides clients for the remote text-generation
// service. One provider is selected at startup; there is no routing or
// fallback between providers.
package generation

import (
	"context"
	"fmt"
)

// Result is the outcome of a successful generation call. The text is
// returned exactly as produced by the provider, with no post-processing and
// no length capping.
type Result struct {
	Text      string
	LatencyMs int64
}

// Error is the single failure channel of the generation pipeline: any
// transport error, non-2xx status, or malformed response body ends up here.
// Callers own user-facing messaging; this package never substitutes
// placeholder text.
type Error struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation failed (%s, status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("generation failed (%s): %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client is the interface for generation providers. Each Generate call is
// exactly-once from the client's perspective: no retries, no caching.
type Client interface {
	// Generate sends a prompt and returns the generated text.
	Generate(ctx context.Context, prompt string) (*Result, error)

	// Name returns the provider name.
	Name() string
}

// Provider is the type of generation provider.
type Provider string

const (
	ProviderViVi      Provider = "vivi"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Config holds provider construction settings.
type Config struct {
	EndpointURL     string
	EndpointAPIKey  string
	OpenAIAPIKey    string
	AnthropicAPIKey string
}

// NewClient creates a generation client for the configured provider.
func NewClient(provider Provider, cfg Config) (Client, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey)
	case ProviderAnthropic:
		return NewAnthropicClient(cfg.AnthropicAPIKey)
	case ProviderViVi:
		return NewHTTPClient(cfg.EndpointURL, cfg.EndpointAPIKey)
	default:
		return NewHTTPClient(cfg.EndpointURL, cfg.EndpointAPIKey)
	}
}
