package domain

import (
	"errors"
	"net/http"
)

// Sentinel errors forming the service error taxonomy - match with errors.Is().
// Every failure a caller can observe maps to exactly one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ConflictError is a conflict that identifies the already-existing resource,
// e.g. the favourite that already exists for a (user, board) pair.
type ConflictError struct {
	Message      string
	ResourceType string // "board" or "favourite"
	ResourceID   string // ID of the existing resource, if known
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode maps the error to its HTTP status.
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
