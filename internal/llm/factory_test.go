package llm

import (
	"context"
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VIDYA_LLM_PROVIDER",
		"VIDYA_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY",
		"VIDYA_OPENAI_API_KEY", "OPENAI_API_KEY",
		"VIDYA_GEMINI_API_KEY", "GEMINI_API_KEY",
		"VIDYA_OPENROUTER_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestNewProviderFromEnvUsesConfigDefault(t *testing.T) {
	clearProviderEnv(t)

	p, err := NewProviderFromEnv(context.Background(), "mock", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*MockProvider); !ok {
		t.Fatalf("provider = %T, want *MockProvider from the config default", p)
	}
}

func TestNewProviderFromEnvEnvWins(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("VIDYA_LLM_PROVIDER", "mock")

	// The config file says anthropic, but the env var overrides it.
	p, err := NewProviderFromEnv(context.Background(), "anthropic", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*MockProvider); !ok {
		t.Fatalf("provider = %T, want *MockProvider from the env var", p)
	}
}

func TestNewProviderFromEnvDiscoversStandardKeys(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	// No VIDYA_* config and the default anthropic provider has no key, so
	// discovery should land on the exported Gemini key.
	p, err := NewProviderFromEnv(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.ModelID(); got != "gemini-2.0-flash" {
		t.Errorf("model = %q, want the default gemini model", got)
	}
}

func TestNewProviderFromEnvNoKeyAnywhere(t *testing.T) {
	clearProviderEnv(t)

	if _, err := NewProviderFromEnv(context.Background(), "", nil); err == nil {
		t.Fatal("expected error when no provider has a key")
	}
}

func TestNewProviderUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "abacus"
	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProviderWrapsWithDecorators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.Anthropic.APIKey = "sk-test"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	retry, ok := p.(*RetryProvider)
	if !ok {
		t.Fatalf("outer layer = %T, want *RetryProvider", p)
	}
	if _, ok := retry.inner.(*LoggingProvider); !ok {
		t.Fatalf("inner layer = %T, want *LoggingProvider", retry.inner)
	}
}
