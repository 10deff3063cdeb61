// internal/util/util_test.go
package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10); got != "short" {
		t.Fatalf("expected untouched string, got %q", got)
	}
	if got := TruncateRunes("hello world", 5); got != "hello…" {
		t.Fatalf("expected truncated string with ellipsis, got %q", got)
	}
	// Runes, not bytes.
	if got := TruncateRunes("héllo wörld", 5); got != "héllo…" {
		t.Fatalf("expected rune-aware truncation, got %q", got)
	}
}
