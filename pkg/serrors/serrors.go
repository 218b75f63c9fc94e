// Package serrors defines the semantic error kinds SalaryScope reports and a
// wrapper that keeps both the kind and the concrete cause reachable through
// errors.Is and errors.As.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by every semantic error kind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel).
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the input file or URL does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrParse indicates the input is not valid tabular text, or a numeric
	// column holds a value that is not a number.
	ErrParse = NewKind("PARSE_ERROR")
	// ErrMissingColumn indicates a routine needs a column the table lacks.
	ErrMissingColumn = NewKind("MISSING_COLUMN")
	// ErrInvalidArgument indicates a tuning parameter is out of range.
	ErrInvalidArgument = NewKind("INVALID_ARGUMENT")
)

// Error is a semantic error carrying a kind, an optional cause and an
// optional message.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg: "<msg>"
//   - only err: "<err>"
//   - neither: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error that wraps err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// MissingColumn is a shorthand for the most common failure of the chart and
// statistics routines.
func MissingColumn(name string) *Error {
	return With(ErrMissingColumn, "missing required column %q", name)
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes the wrapped cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.err
}

// Is reports whether target matches the kind or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	if k, ok := target.(Kind); ok && e.kind == k {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the kind of the first *Error found in err's chain.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.kind
	}

	return nil
}
