package render

import "fmt"

// Error is the unified failure type for a render call. It carries a
// descriptive message and, when the failure originated in an underlying
// formatter or serializer, the wrapped cause. There is no retryable
// distinction: any Error aborts the current render.
type Error struct {
	msg string
	err error
}

// NewError creates an Error with the given message and no cause.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Errorf creates an Error from a format string. The %w verb wraps a
// cause that remains reachable through errors.Is and errors.As.
func Errorf(format string, args ...any) *Error {
	wrapped := fmt.Errorf(format, args...)
	return &Error{msg: wrapped.Error(), err: errUnwrap(wrapped)}
}

// WrapError wraps an underlying formatting or serialization failure.
// A nil cause returns nil, and an existing *Error passes through
// unchanged so nesting levels do not stack wrappers.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if re, ok := err.(*Error); ok {
		return re
	}
	return &Error{msg: err.Error(), err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "render failed: " + e.msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// errUnwrap extracts the cause from a fmt.Errorf result, if it has one.
func errUnwrap(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return nil
}
