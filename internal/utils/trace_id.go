package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewTraceID returns a UUIDv7 so trace ids sort by creation time. A random
// UUIDv4 is returned if the time-based generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// ParseTraceID accepts an incoming trace id in any textual UUID form and
// returns it canonicalized. Anything else, including the nil UUID, is
// rejected so caller-supplied garbage never reaches the logs.
func ParseTraceID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return "", false
	}
	return id.String(), true
}
