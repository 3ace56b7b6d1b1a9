// Package action defines the uniform response envelope returned by every
// domain action. The envelope is transport-agnostic: it is constructed and
// consumed in-process, and its Status field mirrors HTTP semantics without
// requiring an HTTP transport.
package action

import (
	"errors"
	"net/http"

	"github.com/carepath/learning-platform/internal/core/domain"
)

// Fault carries the error half of an envelope. FieldErrors is present only
// for validation failures, keyed by the offending input field.
type Fault struct {
	Message     string              `json:"message"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// Response is the envelope every domain action returns.
// Invariant: Success is true iff Data is set and Error is nil, and false iff
// Error is set and Data is nil. Only the constructors below build envelopes,
// which keeps the invariant by construction.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   *Fault `json:"error,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// OK wraps data in a success envelope with status 200.
func OK[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: &data, Status: http.StatusOK}
}

// Created wraps data in a success envelope with status 201.
func Created[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: &data, Status: http.StatusCreated}
}

// Fail builds a failure envelope with an explicit status and message.
func Fail[T any](status int, message string) Response[T] {
	return Response[T]{Success: false, Error: &Fault{Message: message}, Status: status}
}

// Invalid builds a 400 failure carrying field-level validation detail.
func Invalid[T any](fieldErrors map[string][]string) Response[T] {
	return Response[T]{
		Success: false,
		Error:   &Fault{Message: "Validation failed", FieldErrors: fieldErrors},
		Status:  http.StatusBadRequest,
	}
}

// Unauthenticated is the envelope for callers with no resolvable identity.
func Unauthenticated[T any]() Response[T] {
	return Fail[T](http.StatusUnauthorized, "Not authenticated")
}

// Denied is the envelope for callers whose profile is missing or whose role
// does not permit the action.
func Denied[T any]() Response[T] {
	return Fail[T](http.StatusForbidden, "Access denied: insufficient role")
}

// FromError normalizes an error from the guard or a repository into a
// failure envelope. Unknown errors collapse to a generic 500 so raw backend
// faults never leak to the caller; the action logs the cause before calling
// this.
func FromError[T any](err error) Response[T] {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return Unauthenticated[T]()
	case errors.Is(err, domain.ErrAccessDenied):
		return Denied[T]()
	case errors.Is(err, domain.ErrProfileNotFound):
		return Fail[T](http.StatusNotFound, "profile not found")
	case errors.Is(err, domain.ErrProgramNotFound):
		return Fail[T](http.StatusNotFound, "program not found")
	case errors.Is(err, domain.ErrCategoryNotFound):
		return Fail[T](http.StatusNotFound, "category not found")
	case errors.Is(err, domain.ErrModuleNotFound):
		return Fail[T](http.StatusNotFound, "module not found")
	case errors.Is(err, domain.ErrContentNotFound):
		return Fail[T](http.StatusNotFound, "content not found")
	case errors.Is(err, domain.ErrAssessmentNotFound):
		return Fail[T](http.StatusNotFound, "assessment not found")
	case errors.Is(err, domain.ErrQuestionNotFound):
		return Fail[T](http.StatusNotFound, "question not found")
	case errors.Is(err, domain.ErrEnrollmentNotFound):
		return Fail[T](http.StatusNotFound, "enrollment not found")
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		return Fail[T](http.StatusConflict, "already enrolled in this program")
	case errors.Is(err, domain.ErrProfileExists):
		return Fail[T](http.StatusConflict, "profile already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Fail[T](http.StatusUnauthorized, "invalid credentials")
	}
	return Fail[T](http.StatusInternalServerError, "internal error")
}

// HTTPStatus returns the HTTP status code an HTTP transport should use when
// writing this envelope.
func (r Response[T]) HTTPStatus() int {
	if r.Status != 0 {
		return r.Status
	}
	if r.Success {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}
