package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/vidya/internal/store"
)

// captureRepo records appended LLM events; the embedded interface covers
// the methods logging never calls.
type captureRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
}

func (c *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func TestLoggingRecordsSuccess(t *testing.T) {
	repo := &captureRepo{}
	m := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"summary":"Angles add to 180 in a triangle."}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 40},
	})
	p := WithLogging(m, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "revision_summary")
	if _, err := p.Generate(ctx, Request{
		System:   "You are a study guide for grades 5-8.",
		Messages: []Message{{Role: RoleUser, Content: "Summarize triangles."}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "anthropic" {
		t.Errorf("provider = %q, want the configured name, not the model ID", e.Provider)
	}
	if e.Model != "mock" {
		t.Errorf("model = %q", e.Model)
	}
	if e.Purpose != "revision_summary" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if !e.Success || e.ErrorMessage != "" {
		t.Errorf("success = %v, error = %q", e.Success, e.ErrorMessage)
	}
	if e.InputTokens != 120 || e.OutputTokens != 40 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "[system]") || !strings.Contains(e.RequestBody, "Summarize triangles.") {
		t.Errorf("request transcript missing content:\n%s", e.RequestBody)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	repo := &captureRepo{}
	m := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}})
	p := WithLogging(m, "gemini", repo)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Anything."}},
	})
	if err == nil {
		t.Fatal("expected the provider error through")
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("failed call logged as success")
	}
	if e.ErrorMessage == "" {
		t.Error("error message not captured")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown for an untagged context", e.Purpose)
	}
}

func TestRenderRequestIncludesSchema(t *testing.T) {
	out := renderRequest(Request{
		Messages: []Message{{Role: RoleUser, Content: "Summarize fractions."}},
		Schema:   revisionLikeSchema(),
	})
	if !strings.Contains(out, "[schema: revision-lite]") {
		t.Errorf("schema header missing:\n%s", out)
	}
	if !strings.Contains(out, "[user]") {
		t.Errorf("user turn missing:\n%s", out)
	}
}
