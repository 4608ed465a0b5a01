package maze

import (
	"errors"
	"fmt"
)

// Code is a machine-readable maze error code.
type Code string

const (
	// CodeInvalidDimensions reports a maze shape that cannot be generated.
	CodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	// CodeInvalidCoordinate reports a coordinate outside the maze or of the wrong length.
	CodeInvalidCoordinate Code = "INVALID_COORDINATE"
	// CodeInvalidViewSpec reports a projection request with unusable view dimensions.
	CodeInvalidViewSpec Code = "INVALID_VIEW_SPEC"
)

// Error is the maze error type. Two errors match under errors.Is when their codes match.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human readable description
	Cause   error  // Wrapped underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewError creates a maze error with a formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidDimensions = &Error{Code: CodeInvalidDimensions, Message: "invalid maze dimensions"}
	ErrInvalidCoordinate = &Error{Code: CodeInvalidCoordinate, Message: "invalid coordinate"}
	ErrInvalidViewSpec   = &Error{Code: CodeInvalidViewSpec, Message: "invalid view spec"}

	ErrJoinStalled  = errors.New("maze sets could not be joined")
	ErrAlreadyBuilt = errors.New("maze builder already used")
)
