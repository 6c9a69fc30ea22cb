package uuidutil

import (
	"strings"

	"github.com/google/uuid"
)

// maxRequestIDLength bounds caller-supplied request IDs echoed back in headers and logs.
const maxRequestIDLength = 64

// NewRequestID generates a new random request ID.
func NewRequestID() string {
	return uuid.NewString()
}

// IsValid checks if a string is a valid UUID format
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// RequestIDOrNew returns the incoming request ID when it is usable, or a fresh one.
// Usable IDs are UUIDs or short tokens made of letters, digits, '-' and '_'.
func RequestIDOrNew(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" || len(incoming) > maxRequestIDLength {
		return NewRequestID()
	}
	if IsValid(incoming) {
		return incoming
	}
	for _, r := range incoming {
		if !isTokenRune(r) {
			return NewRequestID()
		}
	}
	return incoming
}

func isTokenRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
