// Package errors defines the evaluator's fixed error taxonomy. Unlike
// sentra/internal/errors, which attaches source spans and call stacks for a
// language with try/catch, this language never catches its own errors: any
// raised error aborts the program, so a TinyError carries just enough to
// print one diagnostic line and set the process exit code.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is one of the six error categories this evaluator raises.
type Kind string

const (
	KindType          Kind = "TypeError"
	KindDivisionByZero Kind = "DivisionByZero"
	KindName          Kind = "NameError"
	KindValue         Kind = "ValueError"
	KindArity         Kind = "ArityError"
	KindInternal      Kind = "InternalError"
)

// TinyError is the evaluator's single error type: a Kind plus a
// human-readable message, optionally wrapping a lower-level cause (a
// bigint.ErrDivisionByZero, a parser syntax error, and so on).
type TinyError struct {
	Kind    Kind
	Message string
	Line    int // 0 when no source line applies
	cause   error
}

func (e *TinyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Message, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *TinyError) Unwrap() error { return e.cause }

// New builds a TinyError with no source line and no wrapped cause.
func New(kind Kind, format string, args ...interface{}) *TinyError {
	return &TinyError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt builds a TinyError annotated with the statement/expression line that
// raised it.
func NewAt(kind Kind, line int, format string, args ...interface{}) *TinyError {
	return &TinyError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Wrap lifts an arbitrary error into a TinyError of the given kind,
// preserving it as the cause via github.com/pkg/errors.WithStack: formatting
// the Unwrap()ped cause with %+v prints the stack recorded at the Wrap call.
// TinyError's own Error() stays single-line.
func Wrap(kind Kind, line int, err error) *TinyError {
	if err == nil {
		return nil
	}
	return &TinyError{
		Kind:    kind,
		Line:    line,
		Message: err.Error(),
		cause:   errors.WithStack(err),
	}
}

// As reports whether err is a *TinyError, unwrapping through causes the same
// way errors.As does.
func As(err error) (*TinyError, bool) {
	var te *TinyError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
