package core

import (
	"strings"
	"time"
)

// OccurredAt represents when a command was issued or a query was asked.
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision,
// which is the precision both SQL engines store.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}

// NormalizeText trims surrounding whitespace from user input.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail trims and lower-cases an email address, emails are compared case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
