package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderServesInOrder(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"summary":"Fractions name parts of a whole."}`)},
		MockResponse{Content: json.RawMessage(`{"summary":"Decimals are fractions in base ten."}`)},
	)

	first, err := m.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Summarize fractions for grade 6."}},
	})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if string(first.Content) != `{"summary":"Fractions name parts of a whole."}` {
		t.Errorf("first content = %s", first.Content)
	}

	second, err := m.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Now decimals."}},
	})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if string(second.Content) != `{"summary":"Decimals are fractions in base ten."}` {
		t.Errorf("second content = %s", second.Content)
	}

	if m.CallCount() != 2 {
		t.Errorf("call count = %d, want 2", m.CallCount())
	}
	if len(m.Calls) != 2 || m.Calls[0].Messages[0].Content != "Summarize fractions for grade 6." {
		t.Error("requests were not recorded")
	}
}

func TestMockProviderExhaustedQueue(t *testing.T) {
	m := NewMockProvider()

	_, err := m.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}

	m.AddResponse(MockResponse{Content: json.RawMessage(`{"summary":"ok"}`)})
	if _, err := m.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("after AddResponse: %v", err)
	}
}

func TestMockProviderCannedError(t *testing.T) {
	canned := &ErrRateLimit{Err: errors.New("slow down")}
	m := NewMockProvider(MockResponse{Err: canned})

	_, err := m.Generate(context.Background(), Request{})
	if !errors.Is(err, canned) {
		t.Fatalf("expected the canned error, got %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("untagged context purpose = %q, want unknown", got)
	}

	ctx = WithPurpose(ctx, "revision_summary")
	if got := PurposeFrom(ctx); got != "revision_summary" {
		t.Errorf("purpose = %q, want revision_summary", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mut     func(*Config)
		wantErr bool
	}{
		{"anthropic with key", func(c *Config) { c.Anthropic.APIKey = "sk-test" }, false},
		{"anthropic without key", func(c *Config) {}, true},
		{"openai with key", func(c *Config) { c.Provider = "openai"; c.OpenAI.APIKey = "sk-test" }, false},
		{"gemini without key", func(c *Config) { c.Provider = "gemini" }, true},
		{"openrouter with key", func(c *Config) { c.Provider = "openrouter"; c.OpenRouter.APIKey = "sk-test" }, false},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "llama-at-home" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigFromEnvOverlay(t *testing.T) {
	t.Setenv("VIDYA_LLM_PROVIDER", "gemini")
	t.Setenv("VIDYA_GEMINI_API_KEY", "g-key")
	t.Setenv("VIDYA_GEMINI_MODEL", "gemini-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" || cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("gemini config = %+v", cfg.Gemini)
	}
	// Untouched sections keep their defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic model = %q, want default", cfg.Anthropic.Model)
	}
}
