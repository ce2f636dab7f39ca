package domain

import (
	"errors"
	"strings"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUpstreamUnavailable = errors.New("identity authority unavailable")
var ErrTooManyAttempts = errors.New("too many login attempts")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// placeholder token values that historically leaked into storage as
// stringified null/undefined. They must behave exactly like an absent token.
var placeholderTokens = map[string]struct{}{
	"null":      {},
	"undefined": {},
}

// ValidToken reports whether raw is a usable session token. Empty strings,
// whitespace-only strings, and the literal placeholders "null" and
// "undefined" all count as absent.
func ValidToken(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	_, placeholder := placeholderTokens[trimmed]
	return !placeholder
}
