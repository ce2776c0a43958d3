// Package ops implements binary and unary operator dispatch: a fixed
// per-operator precedence of operand typing (string checks first, then
// float-dominant promotion, else int), and floor division and floor modulo
// backed by internal/bigint. Chained comparisons and the short-circuiting
// logical operators are evaluated by internal/interpreter, which calls the
// single-comparison functions here one link at a time.
package ops

import (
	"math"

	"github.com/nchodur/tinypy/internal/bigint"
	"github.com/nchodur/tinypy/internal/value"
)

// TypeError is returned for any operand-type combination an operator
// rejects.
type TypeError struct {
	Op          string
	Left, Right value.Kind
}

func (e *TypeError) Error() string {
	return "unsupported operand type(s) for " + e.Op + ": '" + e.Left.String() + "' and '" + e.Right.String() + "'"
}

// DivisionByZero is returned by /, //, and % when the right operand is
// zero.
type DivisionByZero struct{ Op string }

func (e *DivisionByZero) Error() string { return "division by zero" }

func isStr(v value.Value) bool { return v.Kind == value.KindStr }
func isFloat(v value.Value) bool { return v.Kind == value.KindFloat }

// Add implements +: string concatenation, float-dominant else int addition.
func Add(l, r value.Value) (value.Value, error) {
	if isStr(l) && isStr(r) {
		return value.Str(l.Str + r.Str), nil
	}
	if isStr(l) || isStr(r) {
		return value.Value{}, &TypeError{"+", l.Kind, r.Kind}
	}
	if isFloat(l) || isFloat(r) {
		lf, rf, err := bothFloat(l, r)
		if err != nil {
			return value.Value{}, err
		}
		return value.Float(lf + rf), nil
	}
	li, ri, err := bothInt(l, r)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(bigint.Add(li, ri)), nil
}

// Sub implements -: strings are rejected outright.
func Sub(l, r value.Value) (value.Value, error) {
	if isStr(l) || isStr(r) {
		return value.Value{}, &TypeError{"-", l.Kind, r.Kind}
	}
	if isFloat(l) || isFloat(r) {
		lf, rf, err := bothFloat(l, r)
		if err != nil {
			return value.Value{}, err
		}
		return value.Float(lf - rf), nil
	}
	li, ri, err := bothInt(l, r)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(bigint.Sub(li, ri)), nil
}

// Mul implements *: Str*Int (either order) repeats the string max(0,n)
// times; otherwise float-dominant else int.
func Mul(l, r value.Value) (value.Value, error) {
	if isStr(r) && l.Kind == value.KindInt {
		l, r = r, l
	}
	if isStr(l) && r.Kind == value.KindInt {
		return repeatString(l.Str, r.Int), nil
	}
	if isStr(l) || isStr(r) {
		return value.Value{}, &TypeError{"*", l.Kind, r.Kind}
	}
	if isFloat(l) || isFloat(r) {
		lf, rf, err := bothFloat(l, r)
		if err != nil {
			return value.Value{}, err
		}
		return value.Float(lf * rf), nil
	}
	li, ri, err := bothInt(l, r)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(bigint.Mul(li, ri)), nil
}

func repeatString(s string, n bigint.Int) value.Value {
	if n.Sign <= 0 {
		return value.Str("")
	}
	count := bigintToClampedInt(n)
	out := make([]byte, 0, len(s)*count)
	for i := 0; i < count; i++ {
		out = append(out, s...)
	}
	return value.Str(string(out))
}

// bigintToClampedInt converts a nonnegative bigint.Int to an int, clamping
// to a practical string-repetition ceiling rather than overflowing — no
// source program legitimately repeats a string billions of times.
func bigintToClampedInt(n bigint.Int) int {
	const maxRepeat = 1 << 28
	f := n.Float64()
	if f > float64(maxRepeat) {
		return maxRepeat
	}
	return int(f)
}

// Div implements /: always float division, rejects strings, zero divisor
// fails.
func Div(l, r value.Value) (value.Value, error) {
	if isStr(l) || isStr(r) {
		return value.Value{}, &TypeError{"/", l.Kind, r.Kind}
	}
	lf, rf, err := bothFloat(l, r)
	if err != nil {
		return value.Value{}, err
	}
	if rf == 0 {
		return value.Value{}, &DivisionByZero{"/"}
	}
	return value.Float(lf / rf), nil
}

// FloorDiv implements //: int/int uses bigint floor division; otherwise
// float division followed by math.Floor.
func FloorDiv(l, r value.Value) (value.Value, error) {
	if isStr(l) || isStr(r) {
		return value.Value{}, &TypeError{"//", l.Kind, r.Kind}
	}
	if l.Kind == value.KindInt && r.Kind == value.KindInt {
		if r.Int.IsZero() {
			return value.Value{}, &DivisionByZero{"//"}
		}
		q, _, err := bigint.DivMod(l.Int, r.Int)
		if err != nil {
			return value.Value{}, &DivisionByZero{"//"}
		}
		return value.Int(q), nil
	}
	lf, rf, err := bothFloat(l, r)
	if err != nil {
		return value.Value{}, err
	}
	if rf == 0 {
		return value.Value{}, &DivisionByZero{"//"}
	}
	return value.Float(math.Floor(lf / rf)), nil
}

// Mod implements %: int/int uses bigint floor-mod; otherwise math.Mod
// (floating fmod).
func Mod(l, r value.Value) (value.Value, error) {
	if isStr(l) || isStr(r) {
		return value.Value{}, &TypeError{"%", l.Kind, r.Kind}
	}
	if l.Kind == value.KindInt && r.Kind == value.KindInt {
		if r.Int.IsZero() {
			return value.Value{}, &DivisionByZero{"%"}
		}
		_, rem, err := bigint.DivMod(l.Int, r.Int)
		if err != nil {
			return value.Value{}, &DivisionByZero{"%"}
		}
		return value.Int(rem), nil
	}
	lf, rf, err := bothFloat(l, r)
	if err != nil {
		return value.Value{}, err
	}
	if rf == 0 {
		return value.Value{}, &DivisionByZero{"%"}
	}
	return value.Float(math.Mod(lf, rf)), nil
}

// Lt implements <: lexicographic on Str/Str, float-dominant else int
// otherwise; mixed Str/non-Str is a TypeError.
func Lt(l, r value.Value) (value.Value, error) {
	if isStr(l) && isStr(r) {
		return value.Bool(l.Str < r.Str), nil
	}
	if isStr(l) || isStr(r) {
		return value.Value{}, &TypeError{"<", l.Kind, r.Kind}
	}
	if isFloat(l) || isFloat(r) {
		lf, rf, err := bothFloat(l, r)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(lf < rf), nil
	}
	li, ri, err := bothInt(l, r)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(bigint.Cmp(li, ri) < 0), nil
}

// Gt implements >, mirroring Lt.
func Gt(l, r value.Value) (value.Value, error) {
	if isStr(l) && isStr(r) {
		return value.Bool(l.Str > r.Str), nil
	}
	if isStr(l) || isStr(r) {
		return value.Value{}, &TypeError{">", l.Kind, r.Kind}
	}
	if isFloat(l) || isFloat(r) {
		lf, rf, err := bothFloat(l, r)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(lf > rf), nil
	}
	li, ri, err := bothInt(l, r)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(bigint.Cmp(li, ri) > 0), nil
}

// Ge and Le are defined as the negations of Lt/Gt with swapped operands.
func Ge(l, r value.Value) (value.Value, error) {
	lt, err := Lt(l, r)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(!lt.Bool), nil
}

func Le(l, r value.Value) (value.Value, error) {
	gt, err := Gt(l, r)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(!gt.Bool), nil
}

// Eq implements ==: Str vs Str is string equality; Str vs non-Str is always
// False (never an error); None vs None is True, None vs anything else is
// False; otherwise float-dominant else int equality.
func Eq(l, r value.Value) (value.Value, error) {
	if isStr(l) && isStr(r) {
		return value.Bool(l.Str == r.Str), nil
	}
	if isStr(l) || isStr(r) {
		return value.Bool(false), nil
	}
	if l.Kind == value.KindNone || r.Kind == value.KindNone {
		return value.Bool(l.Kind == value.KindNone && r.Kind == value.KindNone), nil
	}
	if isFloat(l) || isFloat(r) {
		lf, rf, err := bothFloat(l, r)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(lf == rf), nil
	}
	li, ri, err := bothInt(l, r)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(bigint.Cmp(li, ri) == 0), nil
}

// Ne implements != as the negation of Eq.
func Ne(l, r value.Value) (value.Value, error) {
	eq, err := Eq(l, r)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(!eq.Bool), nil
}

// UnaryPlus is identity on Int/Float; it promotes Bool to Int.
func UnaryPlus(v value.Value) (value.Value, error) {
	switch v.Kind {
	case value.KindInt, value.KindFloat:
		return v, nil
	case value.KindBool:
		return boolToInt(v), nil
	default:
		return value.Value{}, &TypeError{"unary +", v.Kind, v.Kind}
	}
}

// UnaryMinus negates Int/Float; Bool becomes Int(±1); Str is a TypeError.
func UnaryMinus(v value.Value) (value.Value, error) {
	switch v.Kind {
	case value.KindInt:
		return value.Int(bigint.Neg(v.Int)), nil
	case value.KindFloat:
		return value.Float(-v.Float), nil
	case value.KindBool:
		i := boolToInt(v)
		return value.Int(bigint.Neg(i.Int)), nil
	default:
		return value.Value{}, &TypeError{"unary -", v.Kind, v.Kind}
	}
}

// Not coerces to Bool then negates.
func Not(v value.Value) value.Value {
	return value.Bool(!v.Truthy())
}

func boolToInt(v value.Value) value.Value {
	if v.Bool {
		return value.IntFromInt64(1)
	}
	return value.IntFromInt64(0)
}

// bothInt promotes both operands to Int (Bool participates as Int(1)/Int(0));
// it is only ever called once string and float dispatch have already been
// ruled out, so the only remaining error cases are None and Tuple.
func bothInt(l, r value.Value) (bigint.Int, bigint.Int, error) {
	li, err := asInt(l)
	if err != nil {
		return bigint.Zero, bigint.Zero, err
	}
	ri, err := asInt(r)
	if err != nil {
		return bigint.Zero, bigint.Zero, err
	}
	return li, ri, nil
}

func asInt(v value.Value) (bigint.Int, error) {
	switch v.Kind {
	case value.KindInt:
		return v.Int, nil
	case value.KindBool:
		return boolToInt(v).Int, nil
	default:
		return bigint.Zero, &TypeError{"arithmetic", v.Kind, v.Kind}
	}
}

func bothFloat(l, r value.Value) (float64, float64, error) {
	lf, err := asFloat(l)
	if err != nil {
		return 0, 0, err
	}
	rf, err := asFloat(r)
	if err != nil {
		return 0, 0, err
	}
	return lf, rf, nil
}

func asFloat(v value.Value) (float64, error) {
	switch v.Kind {
	case value.KindFloat:
		return v.Float, nil
	case value.KindInt:
		return v.Int.Float64(), nil
	case value.KindBool:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, &TypeError{"arithmetic", v.Kind, v.Kind}
	}
}
