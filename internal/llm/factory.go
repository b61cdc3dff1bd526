package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/vidya/internal/store"
)

// NewProviderFromEnv builds a Provider from VIDYA_* configuration env
// vars, falling back to probing the standard API key env vars.
// defaultProvider seeds the provider choice (typically from the config
// file); VIDYA_LLM_PROVIDER still wins when set. Pass "" to use the
// built-in default.
func NewProviderFromEnv(ctx context.Context, defaultProvider string, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if defaultProvider != "" && os.Getenv("VIDYA_LLM_PROVIDER") == "" {
		cfg.Provider = defaultProvider
	}
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller -> retry -> logging -> base
	logged := WithLogging(base, cfg.Provider, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}
