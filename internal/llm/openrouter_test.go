package llm

import "testing"

func TestOpenRouterRequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestOpenRouterDefaultModel(t *testing.T) {
	cfg := DefaultConfig().OpenRouter
	cfg.APIKey = "or-test"

	p, err := NewOpenRouterProvider(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Namespaced OpenRouter IDs pass through the OpenAI alias table untouched.
	if got := p.ModelID(); got != "google/gemini-2.0-flash-exp" {
		t.Errorf("default model = %q", got)
	}
}

func TestOpenRouterModelPassThrough(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "or-test",
		Model:  "anthropic/claude-sonnet-4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.ModelID(); got != "anthropic/claude-sonnet-4" {
		t.Errorf("model = %q, want the namespaced ID unchanged", got)
	}
}
