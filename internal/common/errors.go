// Package common defines shared constants and sentinel errors used across
// client and server layers of zkkeeper. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// ErrInvalidCredentials is the only outward signal for a wrong verifier,
	// a locked account or an unknown account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRefreshToken covers expired, unknown, malformed and reused refresh tokens.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// Access token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrAuthenticationFailed is returned when an AEAD tag does not verify.
	ErrAuthenticationFailed = errors.New("message authentication failed")

	// ErrIntegrity marks states that must never happen (e.g. id collisions).
	ErrIntegrity = errors.New("integrity violation")
)

// ValidationError describes a structurally invalid input field. It is safe to
// return to the caller because it never depends on secret state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrorValidation) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrorValidation
}

// NewValidationError builds a *ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
