package util

import (
	"testing"
	"time"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "already normalized", email: "user@example.com", expected: "user@example.com"},
		{name: "mixed case", email: "User@Example.COM", expected: "user@example.com"},
		{name: "surrounding whitespace", email: "  user@example.com \n", expected: "user@example.com"},
		{name: "empty string", email: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeEmail(tt.email); got != tt.expected {
				t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestEmailDigest(t *testing.T) {
	t.Parallel()

	// Digest must be stable across casing and whitespace variants.
	base := EmailDigest("user@example.com")
	if len(base) != 64 {
		t.Fatalf("EmailDigest returned %d hex chars, want 64", len(base))
	}

	if got := EmailDigest(" User@Example.Com "); got != base {
		t.Fatalf("EmailDigest not normalization-stable: %q vs %q", got, base)
	}

	if got := EmailDigest("other@example.com"); got == base {
		t.Fatal("EmailDigest collided for distinct emails")
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
