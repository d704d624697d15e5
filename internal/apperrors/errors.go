// Package apperrors classifies request failures so a single handler can map them to HTTP responses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed input or a missing reference.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeValidation indicates a field constraint failure.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeUnauthorized indicates authentication failure.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL_SERVER_ERROR"
)

// Error carries an error code, a message safe to show to clients,
// the underlying cause and optional per-field details.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error code to a response status.
func (e *Error) HTTPStatus() int {
	return StatusFor(e.Code)
}

// StatusFor maps an error code to a response status.
func StatusFor(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// NotFound builds the error returned when an id lookup misses.
func NotFound(entity string, id uint) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: id=%d", entity, id),
		Details: map[string]any{"id": id},
	}
}

// BadRequest builds an INVALID_REQUEST error.
func BadRequest(message string) *Error {
	return New(ErrCodeInvalidRequest, message)
}

// Unauthorized builds an UNAUTHORIZED error.
func Unauthorized(message string) *Error {
	return New(ErrCodeUnauthorized, message)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err's chain contains a NOT_FOUND error.
func IsNotFound(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == ErrCodeNotFound
}

// ItemError ties a failure to the position of an item in a batch request body.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// ItemErrors collects every failing item of a batch request body.
type ItemErrors []*ItemError

func (e ItemErrors) Error() string {
	msgs := make([]string, len(e))
	for i, itemErr := range e {
		msgs[i] = itemErr.Error()
	}
	return strings.Join(msgs, "; ")
}
