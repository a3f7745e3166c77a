// Package apperror provides the structured error type shared by services and handlers.
package apperror

import (
	"errors"
	"fmt"
	"time"
)

// Code is a stable, machine-readable error classification.
type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodePersistence  Code = "PERSISTENCE_ERROR"
	CodePartialWrite Code = "PARTIAL_WRITE_WARNING"
	CodeDataFetch    Code = "DATA_FETCH_ERROR"
	CodeNotFound     Code = "NOT_FOUND"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a structured application error. Message is safe to show to clients,
// Details carries the diagnostic text of the underlying cause.
type Error struct {
	Code      Code      `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	cause error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(code Code, message string, cause error) *Error {
	e := &Error{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// Validation reports a malformed or incomplete input. Nothing has been persisted.
func Validation(message string) *Error {
	return newError(CodeValidation, message, nil)
}

// Persistence reports a failed required write.
func Persistence(message string, cause error) *Error {
	return newError(CodePersistence, message, cause)
}

// PartialWrite reports a failed optional write; the primary operation still succeeded.
func PartialWrite(message string, cause error) *Error {
	return newError(CodePartialWrite, message, cause)
}

// DataFetch reports a failed read from a data source.
func DataFetch(message string, cause error) *Error {
	return newError(CodeDataFetch, message, cause)
}

// NotFound reports a missing entity.
func NotFound(message string, cause error) *Error {
	return newError(CodeNotFound, message, cause)
}

// Unauthorized reports missing or invalid credentials.
func Unauthorized(message string) *Error {
	return newError(CodeUnauthorized, message, nil)
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// MessageOf returns the client-safe message of err, or fallback if err carries none.
func MessageOf(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}
