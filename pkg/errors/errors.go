// Package errors augments the standard errors package
// with an Error type that can wrap a cause while remaining
// comparable to its originating sentinel with errors.Is.
package errors

import (
	stderr "errors"
	"fmt"

	"go.uber.org/zap"
)

var _ error = New("")

// New builds a new Error with no cause. Package-level sentinels
// should be declared with New.
func New(msg string) *Error {
	e := &Error{msg: msg}
	e.root = e
	return e
}

// Error is an error with a fixed head message and an optional nested cause.
//
// Wrapping never mutates the receiver: sentinel errors declared at package
// level stay pristine, and every wrapped copy still matches its sentinel
// through Is.
type Error struct {
	msg  string
	err  error
	root *Error
}

// Error reports the head message, with the cause appended when present
// so that diagnostics from external tools are never lost.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap yields the nested cause
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap returns a copy of e with err as its nested cause
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, root: e.root}
}

// Wrapf is like Wrap, with a formatted message as the cause
func (e *Error) Wrapf(format string, args ...interface{}) *Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// WrapMessage returns a copy of e with a plain message as its cause
func (e *Error) WrapMessage(msg string) *Error {
	return e.Wrap(stderr.New(msg))
}

// WrapWithLog wraps err and logs the outcome on the provided logger
func (e *Error) WrapWithLog(l *zap.Logger, err error, fields ...zap.Field) *Error {
	wrapped := e.Wrap(err)
	if l != nil {
		l.Error(e.msg, append(fields, zap.Error(err))...)
	}
	return wrapped
}

// Is reports whether target is this error's originating sentinel
// (or the error itself)
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e == t || e.root == t.root
	}
	return false
}

// As finds the first error in err's chain that matches target
// (a shortcut to the standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to the standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
