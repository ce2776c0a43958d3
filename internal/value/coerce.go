package value

import (
	"strconv"
	"strings"

	"github.com/nchodur/tinypy/internal/bigint"
)

// CoerceError is returned by the Str->Int / Str->Float coercions on a parse
// failure; the interpreter wraps it into a ValueError diagnostic.
type CoerceError struct {
	From Kind
	To   string
	Text string
}

func (e *CoerceError) Error() string {
	return "invalid literal for " + e.To + "(): " + strconv.Quote(e.Text)
}

// ToInt implements the Int column of the coercion table. None has no Int
// coercion.
func ToInt(v Value) (Value, error) {
	switch v.Kind {
	case KindInt:
		return v, nil
	case KindFloat:
		return Int(bigint.FromInt64(int64(v.Float))), nil
	case KindBool:
		if v.Bool {
			return IntFromInt64(1), nil
		}
		return IntFromInt64(0), nil
	case KindStr:
		i, err := bigint.Parse(strings.TrimSpace(v.Str))
		if err != nil {
			return Value{}, &CoerceError{From: v.Kind, To: "int", Text: v.Str}
		}
		return Int(i), nil
	default:
		return Value{}, &CoerceError{From: v.Kind, To: "int", Text: v.String()}
	}
}

// ToFloat implements the Float column.
func ToFloat(v Value) (Value, error) {
	switch v.Kind {
	case KindInt:
		return Float(v.Int.Float64()), nil
	case KindFloat:
		return v, nil
	case KindBool:
		if v.Bool {
			return Float(1), nil
		}
		return Float(0), nil
	case KindStr:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return Value{}, &CoerceError{From: v.Kind, To: "float", Text: v.Str}
		}
		return Float(f), nil
	default:
		return Value{}, &CoerceError{From: v.Kind, To: "float", Text: v.String()}
	}
}

// ToBool implements the Bool column; it never fails (every row defines a
// Bool coercion) and matches Truthy.
func ToBool(v Value) Value {
	return Bool(v.Truthy())
}

// ToStr implements the Str column; it never fails.
func ToStr(v Value) Value {
	return Str(v.String())
}
