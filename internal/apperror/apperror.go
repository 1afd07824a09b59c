package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds for the error taxonomy. Services wrap these with context
// via the helpers below; the server's error handler maps them to HTTP
// status codes with errors.Is.
var (
	// ErrValidation marks a malformed or incomplete submission. Rejected
	// before any background work is scheduled, never retried.
	ErrValidation = errors.New("invalid request")

	// ErrUnauthorized marks a caller lacking the required role.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a missing session, participant, applicant or
	// keyword. Inside the persister it is scoped to a single candidate.
	ErrNotFound = errors.New("not found")
)

func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

func Unauthorizedf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrUnauthorized)
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}
