// Package errors provides coded errors for the polyline tool.
//
// Path generation, smoothing and simplification never fail: degenerate
// geometry degrades to keeping the endpoints. Errors only arise where user
// input (flags, config files, colours, output paths) becomes pipeline
// options, and this package tags them with a [Code] and, for parameter
// errors, the name of the offending option.
//
//	err := errors.Invalid("tolerance", "must be >= 0, got %g", tol)
//	errors.Is(err, errors.ErrCodeInvalidParams) // true
//	errors.UserMessage(err)                      // "tolerance must be >= 0, got -1"
//
// Codes starting with INVALID_ mark input the user can fix; see [IsInput].
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidParams Code = "INVALID_PARAMS"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// IsInput reports whether c describes bad user input.
func (c Code) IsInput() bool { return strings.HasPrefix(string(c), "INVALID_") }

// Error is a coded error. Field names the option at fault, if any.
type Error struct {
	Code    Code
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.text())
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) text() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is like [New] but records cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Invalid returns an ErrCodeInvalidParams error for the named option.
func Invalid(field, format string, args ...any) *Error {
	e := New(ErrCodeInvalidParams, format, args...)
	e.Field = field
	return e
}

// Is reports whether the first *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// FieldOf returns the option name recorded on err, or "".
func FieldOf(err error) string {
	if e, ok := asError(err); ok {
		return e.Field
	}
	return ""
}

// IsInput reports whether err carries a user-input code.
func IsInput(err error) bool { return GetCode(err).IsInput() }

// UserMessage returns err without its code prefix.
func UserMessage(err error) string {
	if e, ok := asError(err); ok {
		return e.text()
	}
	return err.Error()
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
