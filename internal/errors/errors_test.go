package errors

import (
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestErrorRenderingSingleLine(t *testing.T) {
	e := NewAt(KindType, 4, "unsupported operand type(s) for -: 'Str' and 'Int'")
	got := e.Error()
	want := "TypeError: unsupported operand type(s) for -: 'Str' and 'Int' (line 4)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrorRenderingWithoutLine(t *testing.T) {
	e := New(KindName, "undefined function %q", "foo")
	want := `NameError: undefined function "foo"`
	if e.Error() != want {
		t.Fatalf("got %q, want %q", e.Error(), want)
	}
}

func TestWrapPreservesCauseAndAs(t *testing.T) {
	cause := fmt.Errorf("division by zero")
	wrapped := Wrap(KindDivisionByZero, 10, cause)
	var target error = wrapped
	te, ok := As(target)
	if !ok {
		t.Fatal("expected As to find the TinyError")
	}
	if te.Kind != KindDivisionByZero {
		t.Fatalf("got kind %s", te.Kind)
	}
	if got := pkgerrors.Cause(te.Unwrap()); got != cause {
		t.Fatalf("expected wrapped cause %v, got %v", cause, got)
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if Wrap(KindInternal, 0, nil) != nil {
		t.Fatal("expected Wrap(nil) to return nil")
	}
}
