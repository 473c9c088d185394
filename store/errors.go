package store

import "errors"

// Failure taxonomy surfaced to callers. Handlers map these to HTTP status
// codes in one place; no operation is retried.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationf(msg string) error {
	return &ValidationError{Msg: msg}
}
