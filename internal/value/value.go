// Package value implements the tagged union of runtime values the
// evaluator produces: Int, Float, Str, Bool, None, and Tuple, plus the
// str/int/float/bool coercion table the int(), float(), str(), and bool()
// builtins use.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nchodur/tinypy/internal/bigint"
)

// Kind tags which field of a Value is live.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindStr
	KindBool
	KindNone
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindBool:
		return "bool"
	case KindNone:
		return "NoneType"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// Value is immutable: every operation that "changes" a value produces a new
// one rather than mutating in place.
type Value struct {
	Kind  Kind
	Int   bigint.Int
	Float float64
	Str   string
	Bool  bool
	Tuple []Value
}

// None is the single None value; identity of None equates to itself.
var None = Value{Kind: KindNone}

func Int(i bigint.Int) Value      { return Value{Kind: KindInt, Int: i} }
func Float(f float64) Value       { return Value{Kind: KindFloat, Float: f} }
func Str(s string) Value          { return Value{Kind: KindStr, Str: s} }
func Bool(b bool) Value           { return Value{Kind: KindBool, Bool: b} }
func Tuple(vs ...Value) Value     { return Value{Kind: KindTuple, Tuple: flatten(vs)} }
func IntFromInt64(n int64) Value  { return Int(bigint.FromInt64(n)) }

// flatten appends a Tuple's elements rather than nesting it: tuples are
// never implicitly nested one level deep.
func flatten(vs []Value) []Value {
	var out []Value
	for _, v := range vs {
		if v.Kind == KindTuple {
			out = append(out, v.Tuple...)
		} else {
			out = append(out, v)
		}
	}
	return out
}

// Pack wraps a slice of values the way a testlist does: zero values becomes
// None, one value unwraps to itself, more than one becomes a Tuple.
func Pack(vs []Value) Value {
	switch len(vs) {
	case 0:
		return None
	case 1:
		return vs[0]
	default:
		return Tuple(vs...)
	}
}

// Truthy implements the source language's truth-testing rule: 0, 0.0, "",
// False, and None are falsy; everything else (including nonempty tuples and
// nonzero numbers) is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindInt:
		return !v.Int.IsZero()
	case KindFloat:
		return v.Float != 0
	case KindStr:
		return v.Str != ""
	case KindBool:
		return v.Bool
	case KindNone:
		return false
	case KindTuple:
		return len(v.Tuple) > 0
	default:
		return false
	}
}

// String renders a Value the way print() and str() do.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return v.Int.String()
	case KindFloat:
		return formatFloat(v.Float)
	case KindStr:
		return v.Str
	case KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case KindNone:
		return "None"
	case KindTuple:
		parts := make([]string, len(v.Tuple))
		for i, e := range v.Tuple {
			parts[i] = e.String()
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("<unknown kind %d>", v.Kind)
	}
}

// formatFloat ensures integral-looking floats still print with at least one
// fractional digit (Python's default float repr: 3.0 prints as "3.0",
// never "3").
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && !strings.Contains(s, "NaN") {
		s += ".0"
	}
	return s
}
