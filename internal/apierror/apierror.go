// Package apierror provides standardized error response structures for the API
// and the error taxonomy shared by services and repositories.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError rejects a payload before any store access.
// Fields maps the offending field (JSON name) to the violated constraint.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Field is shorthand for a single-field rejection.
func Field(name, constraint string) *ValidationError {
	return &ValidationError{Fields: map[string]string{name: constraint}}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, k := range names {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NotFoundError reports that the referenced identifier does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func NotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// ConflictError reports a uniqueness violation (identifier, email, code).
type ConflictError struct {
	Entity string
	Detail string
}

func Conflict(entity, detail string) *ConflictError {
	return &ConflictError{Entity: entity, Detail: detail}
}

func (e *ConflictError) Error() string { return e.Detail }

// StorageError wraps any store failure not otherwise classified.
type StorageError struct {
	Op  string
	Err error
}

func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

// Status maps an error from the taxonomy to its HTTP status and the envelope
// that is safe to show to clients.
func Status(err error) (int, *APIError) {
	var (
		ve *ValidationError
		nf *NotFoundError
		ce *ConflictError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, &APIError{Detail: "Validation error", Fields: ve.Fields}
	case errors.As(err, &nf):
		return http.StatusNotFound, New(nf.Error())
	case errors.As(err, &ce):
		return http.StatusConflict, New(ce.Error())
	default:
		return http.StatusInternalServerError, New("Internal server error")
	}
}
