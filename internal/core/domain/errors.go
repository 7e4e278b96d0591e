package domain

import "errors"

var (
	// ErrUnauthenticated covers a missing, malformed, forged or expired token.
	// Callers never learn which.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the identity is valid but its role or property grant
	// does not cover the requested operation.
	ErrForbidden = errors.New("access forbidden")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrInvalidInput     = errors.New("invalid input")
	ErrPayloadTooLarge  = errors.New("payload too large")
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrResourceNotFound = errors.New("resource not found")

	// ErrStorageUnavailable wraps driver-level failures. It is the only class
	// a caller may retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InvalidInput returns an ErrInvalidInput carrying a human-readable reason.
func InvalidInput(reason string) error {
	return &inputError{reason: reason}
}

type inputError struct {
	reason string
}

func (e *inputError) Error() string { return e.reason }

func (e *inputError) Unwrap() error { return ErrInvalidInput }
