package interpreter

import (
	"fmt"
	"io"
	"strings"

	tperrors "github.com/nchodur/tinypy/internal/errors"
	"github.com/nchodur/tinypy/internal/value"
)

// builtin is a host function: print and the four value coercions (int,
// float, str, bool). Each non-print builtin takes exactly one argument;
// calling it with any other count is an ArityError, a feature recovered
// from original_source/src/Evalvisitor.cpp's callSystemFunction.
type builtin func(w io.Writer, args []value.Value) (value.Value, error)

var builtins = map[string]builtin{
	"print": biPrint,
	"int":   biUnary("int", func(v value.Value) (value.Value, error) { return value.ToInt(v) }),
	"float": biUnary("float", func(v value.Value) (value.Value, error) { return value.ToFloat(v) }),
	"str":   biUnary("str", func(v value.Value) (value.Value, error) { return value.ToStr(v), nil }),
	"bool":  biUnary("bool", func(v value.Value) (value.Value, error) { return value.ToBool(v), nil }),
}

func isBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// biPrint writes each argument's string form separated by single spaces,
// followed by a newline.
func biPrint(w io.Writer, args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
	return value.None, nil
}

// biUnary wraps a one-argument coercion with the builtin arity check.
func biUnary(name string, f func(value.Value) (value.Value, error)) builtin {
	return func(w io.Writer, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return value.None, tperrors.New(tperrors.KindArity,
				"%s() takes exactly 1 argument (%d given)", name, len(args))
		}
		v, err := f(args[0])
		if err != nil {
			if ce, ok := err.(*value.CoerceError); ok {
				return value.None, tperrors.New(tperrors.KindValue, "%s", ce.Error())
			}
			return value.None, err
		}
		return v, nil
	}
}
