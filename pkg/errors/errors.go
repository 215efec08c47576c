// Package errors provides the structured error type returned by every
// gitea-go operation.
//
// Each failure carries a machine-readable [Code] so callers can branch on the
// failure category without matching strings:
//
//   - CONFIGURATION: bad client construction arguments
//   - VALIDATION: a bad per-call argument, reported before any request is sent
//   - UNAUTHORIZED: the server answered 401
//   - NOT_FOUND: the server answered 404
//   - REMOTE: any other non-2xx answer, with status code and text
//   - TRANSPORT: no HTTP response was obtained (DNS, refused, timeout)
//
// # Usage
//
//	repo, err := client.GetRepository(ctx, "owner", "repo")
//	switch {
//	case errors.Is(err, errors.ErrCodeNotFound):
//	    // repository does not exist
//	case errors.Is(err, errors.ErrCodeUnauthorized):
//	    // token rejected
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes, one per failure category.
const (
	ErrCodeConfiguration Code = "CONFIGURATION"
	ErrCodeValidation    Code = "VALIDATION"
	ErrCodeUnauthorized  Code = "UNAUTHORIZED"
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeRemote        Code = "REMOTE"
	ErrCodeTransport     Code = "TRANSPORT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code       Code   // Machine-readable error code
	Message    string // Human-readable message
	StatusCode int    // HTTP status for UNAUTHORIZED, NOT_FOUND and REMOTE; 0 otherwise
	Cause      error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// HTTP creates an Error for a response with the given status code.
func HTTP(code Code, status int, format string, args ...any) *Error {
	return &Error{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: status,
	}
}

func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether any *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	if e, ok := as(err); ok {
		return e.StatusCode
	}
	return 0
}

// UserMessage returns the message of the first *Error in err's chain,
// without the code prefix, or err.Error() for foreign errors.
func UserMessage(err error) string {
	if e, ok := as(err); ok {
		return e.Message
	}
	return err.Error()
}
