// Package apperr defines the closed set of application error kinds and their
// HTTP status mapping. Every error that reaches the response boundary is
// either one of these or gets coerced to INTERNAL_ERROR by From.
package apperr

import (
	"errors"
	"net/http"
)

// Machine-readable error codes carried in the error envelope.
const (
	CodeBadRequest = "BAD_REQUEST"
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// Error is the canonical application error. Message and Details are safe to
// return to the client; the wrapped cause is for server-side logging only.
type Error struct {
	Code    string
	Message string
	Status  int
	Details any
	cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap lets errors.Is/errors.As traverse to the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

// Cause returns the wrapped internal error, if any.
func (e *Error) Cause() error { return e.cause }

// BadRequest signals a malformed request shape (unparseable body, etc.).
func BadRequest(message string) *Error {
	return &Error{Code: CodeBadRequest, Message: message, Status: http.StatusBadRequest}
}

// Validation signals a schema or cross-field rule violation. details usually
// holds a map of field path to human-readable message.
func Validation(message string, details any) *Error {
	return &Error{Code: CodeValidation, Message: message, Status: http.StatusBadRequest, Details: details}
}

// NotFound signals that a referenced entity does not exist.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message, Status: http.StatusNotFound}
}

// Internal wraps an unexpected failure. The cause is never exposed to clients.
func Internal(cause error) *Error {
	return &Error{
		Code:    CodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
}

// From extracts the *Error from err's chain, or wraps err as INTERNAL_ERROR.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
