// internal/benchmark/session_test.go
package benchmark

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ollamabench/ollamabench/internal/appconfig"
	"github.com/ollamabench/ollamabench/internal/providers"
)

func sessionConfig(models, prompts []string, verbose bool) *appconfig.Config {
	return &appconfig.Config{
		Host:    appconfig.Host{Name: "test", URL: "http://test"},
		Verbose: verbose,
		Models:  models,
		Prompts: prompts,
	}
}

func completedExchange(model, text string) fakeResponse {
	return fakeResponse{
		chunks:   []providers.ChatMessage{{Role: "assistant", Content: text}},
		meta:     goodMeta(model),
		complete: true,
	}
}

// TestSessionEndToEnd drives two prompts against one model with deterministic
// telemetry and checks both the per-run rates and the sum-based aggregate.
func TestSessionEndToEnd(t *testing.T) {
	color.NoColor = true
	provider := &fakeProvider{
		models: []string{"m1"},
		responses: map[string][]fakeResponse{
			"m1": {
				completedExchange("m1", "first"),
				completedExchange("m1", "second"),
			},
		},
	}

	var buf strings.Builder
	session := NewSession(sessionConfig(nil, []string{"p1", "p2"}, true), provider, &buf)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Evaluating models: [m1]") {
		t.Fatalf("expected model announcement:\n%s", out)
	}
	// Each run: 10 prompt tokens over 1s and 20 generated over 2s.
	if got := strings.Count(out, "Prompt Processing:  10.00 tokens/sec"); got != 3 {
		t.Fatalf("expected prompt rate in 2 runs + aggregate, got %d occurrences:\n%s", got, out)
	}
	if !strings.Contains(out, "Average stats (Average stats across 2 runs):") {
		t.Fatalf("expected aggregate block:\n%s", out)
	}
	// Aggregate sums: 20 input, 40 generated.
	if !strings.Contains(out, "Input Tokens:       20") || !strings.Contains(out, "Generated Tokens:   40") {
		t.Fatalf("expected summed aggregate tokens:\n%s", out)
	}
	if !strings.Contains(out, "Completed 2 of 2 runs (0 failed).") {
		t.Fatalf("expected run summary:\n%s", out)
	}
	if session.Failures() != 0 {
		t.Fatalf("expected no failures, got %d", session.Failures())
	}

	// Two sequential chat requests, prompts in configured order.
	if len(provider.requests) != 2 {
		t.Fatalf("expected 2 chat requests, got %d", len(provider.requests))
	}
	if provider.requests[0].Messages[0].Content != "p1" || provider.requests[1].Messages[0].Content != "p2" {
		t.Fatalf("prompts out of order: %+v", provider.requests)
	}
}

// TestSessionContainsRunFailures verifies that one failed prompt neither stops
// the remaining prompts for that model nor the other models.
func TestSessionContainsRunFailures(t *testing.T) {
	color.NoColor = true
	provider := &fakeProvider{
		models: []string{"m1", "m2"},
		responses: map[string][]fakeResponse{
			"m1": {
				{err: errors.New("connection reset")},
				completedExchange("m1", "recovered"),
			},
			"m2": {
				completedExchange("m2", "fine"),
				completedExchange("m2", "fine"),
			},
		},
	}

	var buf strings.Builder
	session := NewSession(sessionConfig(nil, []string{"p1", "p2"}, false), provider, &buf)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if session.Failures() != 1 {
		t.Fatalf("expected 1 failure, got %d", session.Failures())
	}
	out := buf.String()
	if !strings.Contains(out, "connection reset") {
		t.Fatalf("expected diagnostic for failed run:\n%s", out)
	}
	if !strings.Contains(out, "Average stats (Average stats across 1 runs):") {
		t.Fatalf("expected m1 aggregate over surviving run:\n%s", out)
	}
	if !strings.Contains(out, "Average stats (Average stats across 2 runs):") {
		t.Fatalf("expected m2 aggregate over both runs:\n%s", out)
	}
	if !strings.Contains(out, "Completed 3 of 4 runs (1 failed).") {
		t.Fatalf("expected run summary:\n%s", out)
	}
	if len(provider.requests) != 4 {
		t.Fatalf("expected all 4 runs attempted, got %d", len(provider.requests))
	}
}

func TestSessionWarnsOnMissingModels(t *testing.T) {
	color.NoColor = true
	provider := &fakeProvider{
		models: []string{"m1"},
		responses: map[string][]fakeResponse{
			"m1": {completedExchange("m1", "ok")},
		},
	}

	var buf strings.Builder
	session := NewSession(sessionConfig([]string{"m1", "ghost"}, []string{"p1"}, false), provider, &buf)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Warning: some requested models are not available: ghost") {
		t.Fatalf("expected warning naming the missing model:\n%s", out)
	}
	if !strings.Contains(out, "Evaluating models: [m1]") {
		t.Fatalf("expected the available model to run:\n%s", out)
	}
}

func TestSessionFailsWhenDiscoveryFails(t *testing.T) {
	provider := &fakeProvider{listErr: errors.New("backend unavailable")}
	var buf strings.Builder
	session := NewSession(sessionConfig(nil, []string{"p1"}, false), provider, &buf)

	if err := session.Run(context.Background()); err == nil {
		t.Fatal("expected session error when model discovery fails")
	}
}

func TestSessionDefaultsPrompts(t *testing.T) {
	session := NewSession(sessionConfig(nil, nil, false), &fakeProvider{}, &strings.Builder{})
	if len(session.prompts) != len(DefaultPrompts) {
		t.Fatalf("expected default prompt set, got %d prompts", len(session.prompts))
	}
}
