package utils

import (
	"strings"

	"github.com/aarondl/null/v8"
)

// NormalizeOptional trims an optional string; an empty result becomes an
// absent value. Every optional field crosses the command boundary through
// this one function.
func NormalizeOptional(s null.String) null.String {
	if !s.Valid {
		return null.String{}
	}
	trimmed := strings.TrimSpace(s.String)
	if trimmed == "" {
		return null.String{}
	}
	return null.StringFrom(trimmed)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FirstToken returns the first whitespace-delimited token of s.
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
