package util

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

// NormalizeEmail lowercases and trims an email address so account lookups
// are insensitive to how the identity provider cased it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDigest returns a hex-encoded SHA3-256 digest of the normalized email.
// Accounts are looked up by digest so the plaintext column never needs an index.
func EmailDigest(email string) string {
	sum := sha3.Sum256([]byte(NormalizeEmail(email)))

	return fmt.Sprintf("%x", sum)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
