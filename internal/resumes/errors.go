package resumes

import "errors"

var (
	// ErrInvalidInput rejects uploads before any side effect occurs.
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden signals a cross-user access attempt.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound signals a missing resume or missing suggestions.
	ErrNotFound = errors.New("not found")
	// ErrStorage wraps object-store failures on the fatal path. Failures
	// after the original document is stored are absorbed, never wrapped here.
	ErrStorage = errors.New("storage error")
)
