// Package errors provides structured error types for npyi.
//
// Every failure npyi reports on its own behalf is an [*Error]. The [Code]
// tells callers which kind of failure occurred, so they can match broadly
// (any *Error) or narrowly (one code):
//
//   - INVALID_*: input rejected before any network call
//   - REGISTRY_ERROR: the NPPES registry reported an error in its payload
//   - NOT_FOUND: a lookup matched no provider
//
// # Usage
//
//	_, err := npyi.Search(ctx, npyi.SearchParams{"first_name": "Jane"}, npyi.WithVersion("1.5"))
//	if errors.Is(err, errors.ErrCodeInvalidVersion) {
//	    // Handle a bad version
//	}
//
//	var e *errors.Error
//	if stderrors.As(err, &e) {
//	    // Any npyi error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput             Code = "INVALID_INPUT"
	ErrCodeInvalidVersion           Code = "INVALID_VERSION"
	ErrCodeInvalidParameter         Code = "INVALID_PARAMETER"
	ErrCodeInvalidUseFirstNameAlias Code = "INVALID_USE_FIRST_NAME_ALIAS"
	ErrCodeInvalidAddressPurpose    Code = "INVALID_ADDRESS_PURPOSE"
	ErrCodeInvalidConfig            Code = "INVALID_CONFIG"

	// Registry errors
	ErrCodeRegistry        Code = "REGISTRY_ERROR"
	ErrCodeInvalidResponse Code = "INVALID_RESPONSE"
	ErrCodeNotFound        Code = "NOT_FOUND"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err was raised by input validation, i.e.
// before any request could have been sent.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidVersion, ErrCodeInvalidParameter,
		ErrCodeInvalidUseFirstNameAlias, ErrCodeInvalidAddressPurpose, ErrCodeInvalidConfig:
		return true
	}
	return false
}
