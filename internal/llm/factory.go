package llm

import (
	"context"
	"fmt"
	"strings"
)

// Options identifies the vendor client to build.
type Options struct {
	// Kind selects the adapter. Matched case-insensitively.
	// Values: "anthropic", "openai", "dashscope", "gemini".
	Kind string

	// Model is the model identifier to request completions from.
	Model string

	// APIKey authenticates against the vendor.
	APIKey string

	// BaseURL overrides the vendor endpoint. Used for OpenAI-compatible
	// gateways; ignored by adapters that do not support it.
	BaseURL string
}

// New resolves a provider kind to a concrete client. An unrecognized
// kind fails with ErrUnsupportedProvider; it never falls back to a
// default vendor.
func New(ctx context.Context, opts Options) (Provider, error) {
	var p Provider
	var err error

	switch strings.ToLower(opts.Kind) {
	case "anthropic":
		p, err = NewAnthropicProvider(opts.Model, opts.APIKey)
	case "openai":
		p, err = NewOpenAIProvider(opts.Model, opts.APIKey, opts.BaseURL)
	case "dashscope":
		p, err = NewDashScopeProvider(opts.Model, opts.APIKey, opts.BaseURL)
	case "gemini":
		p, err = NewGeminiProvider(ctx, opts.Model, opts.APIKey)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, opts.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", strings.ToLower(opts.Kind), err)
	}
	return p, nil
}
