// Package bigint implements the arbitrary-precision signed integer type the
// evaluator uses for every Int value: sign-magnitude representation over
// base-10000 digits, with decimal I/O, comparison, addition, subtraction,
// FFT-backed multiplication, and divide-and-conquer floor division.
package bigint

import (
	"strings"

	"github.com/pkg/errors"
)

// Base and digit width are part of the decimal I/O contract: every digit
// after the most significant one is printed zero-padded to Width.
const (
	Base  = 10000
	Width = 4
)

// Int is a signed arbitrary-precision integer. Sign is -1, 0, or +1; Digits
// is little-endian base-Base, with no trailing (most-significant) zero
// digit once normalized. The zero value of Int (Sign==0, Digits==nil) is
// the canonical representation of zero.
type Int struct {
	Sign   int
	Digits []int32
}

// Zero is the canonical zero value.
var Zero = Int{}

// normalize trims leading (most-significant) zero digits and resets Sign to
// 0 when the digit slice becomes empty. Every constructor and mutating
// operation ends by calling this.
func normalize(sign int, digits []int32) Int {
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	if len(digits) == 0 {
		return Int{}
	}
	return Int{Sign: sign, Digits: digits}
}

// FromInt64 builds an Int from a native signed integer.
func FromInt64(n int64) Int {
	if n == 0 {
		return Zero
	}
	sign := 1
	if n < 0 {
		sign = -1
		n = -n
	}
	var digits []int32
	for n > 0 {
		digits = append(digits, int32(n%Base))
		n /= Base
	}
	return normalize(sign, digits)
}

// Parse reads a signed decimal string into an Int. An empty string, "0", and
// "-0" all parse to zero. Only ASCII digits with an optional leading sign
// are accepted.
func Parse(s string) (Int, error) {
	if s == "" || s == "0" || s == "-0" || s == "+0" {
		return Zero, nil
	}
	sign := 1
	start := 0
	switch s[0] {
	case '-':
		sign = -1
		start = 1
	case '+':
		sign = 1
		start = 1
	}
	body := s[start:]
	if body == "" {
		return Zero, errors.Errorf("bigint: %q has no digits", s)
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return Zero, errors.Errorf("bigint: invalid digit %q in %q", body[i], s)
		}
	}
	digits := make([]int32, 0, (len(body)+Width-1)/Width)
	for i := len(body); i > 0; i -= Width {
		lo := i - Width
		if lo < 0 {
			lo = 0
		}
		chunk := body[lo:i]
		var x int32
		for _, c := range chunk {
			x = x*10 + int32(c-'0')
		}
		digits = append(digits, x)
	}
	return normalize(sign, digits), nil
}

// MustParse is Parse without an error return, for literals known at compile
// time (tests, constant tables).
func MustParse(s string) Int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the canonical decimal form: optional '-', the
// most-significant digit unpadded, every remaining digit zero-padded to
// Width.
func (a Int) String() string {
	if a.Sign == 0 {
		return "0"
	}
	var sb strings.Builder
	if a.Sign < 0 {
		sb.WriteByte('-')
	}
	n := len(a.Digits)
	sb.WriteString(itoa(a.Digits[n-1]))
	for i := n - 2; i >= 0; i-- {
		s := itoa(a.Digits[i])
		for j := len(s); j < Width; j++ {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

func itoa(x int32) string {
	if x == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	return string(buf[i:])
}

// Float64 converts via Horner-style accumulation of digit*Base^i; used only
// for coercion to the Float value kind.
func (a Int) Float64() float64 {
	if a.Sign == 0 {
		return 0
	}
	result := 0.0
	pow := 1.0
	for _, d := range a.Digits {
		result += float64(d) * pow
		pow *= Base
	}
	if a.Sign < 0 {
		result = -result
	}
	return result
}

// IsZero reports whether a is the canonical zero.
func (a Int) IsZero() bool { return a.Sign == 0 }

// cmpAbs compares |a| and |b|: -1, 0, or 1.
func cmpAbs(a, b Int) int {
	if len(a.Digits) != len(b.Digits) {
		if len(a.Digits) < len(b.Digits) {
			return -1
		}
		return 1
	}
	for i := len(a.Digits) - 1; i >= 0; i-- {
		if a.Digits[i] != b.Digits[i] {
			if a.Digits[i] < b.Digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp defines the total order consistent with mathematical integer order:
// sign-first, then digit-count, then digit-by-digit from the top.
func Cmp(a, b Int) int {
	if a.Sign != b.Sign {
		if a.Sign < b.Sign {
			return -1
		}
		return 1
	}
	if a.Sign == 0 {
		return 0
	}
	c := cmpAbs(a, b)
	if a.Sign < 0 {
		c = -c
	}
	return c
}

func addAbs(a, b Int) Int {
	n := len(a.Digits)
	if len(b.Digits) > n {
		n = len(b.Digits)
	}
	digits := make([]int32, 0, n+1)
	var carry int32
	for i := 0; i < n || carry != 0; i++ {
		var x int32 = carry
		if i < len(a.Digits) {
			x += a.Digits[i]
		}
		if i < len(b.Digits) {
			x += b.Digits[i]
		}
		digits = append(digits, x%Base)
		carry = x / Base
	}
	return normalize(1, digits)
}

// subAbs requires |a| >= |b| and returns |a|-|b| with sign 1 (or 0).
func subAbs(a, b Int) Int {
	digits := make([]int32, 0, len(a.Digits))
	var borrow int32
	for i := 0; i < len(a.Digits); i++ {
		x := a.Digits[i] - borrow
		if i < len(b.Digits) {
			x -= b.Digits[i]
		}
		if x < 0 {
			x += Base
			borrow = 1
		} else {
			borrow = 0
		}
		digits = append(digits, x)
	}
	return normalize(1, digits)
}

// Add returns a+b. Differing signs reduce to a subtraction of magnitudes;
// equal signs walk digits with carry in base Base.
func Add(a, b Int) Int {
	if a.Sign == 0 {
		return b
	}
	if b.Sign == 0 {
		return a
	}
	if a.Sign != b.Sign {
		if a.Sign < 0 {
			return Sub(b, Int{Sign: 1, Digits: a.Digits})
		}
		return Sub(a, Int{Sign: 1, Digits: b.Digits})
	}
	r := addAbs(a, b)
	if r.Sign != 0 {
		r.Sign = a.Sign
	}
	return r
}

// Sub returns a-b, reducing differing-sign and both-negative cases to Add
// or a swapped Sub on the magnitudes.
func Sub(a, b Int) Int {
	if b.Sign == 0 {
		return a
	}
	if a.Sign == 0 {
		return Int{Sign: -b.Sign, Digits: b.Digits}
	}
	if a.Sign != b.Sign {
		return Add(a, Int{Sign: -b.Sign, Digits: b.Digits})
	}
	if a.Sign < 0 {
		return Sub(Int{Sign: 1, Digits: b.Digits}, Int{Sign: 1, Digits: a.Digits})
	}
	if cmpAbs(a, b) < 0 {
		r := subAbs(b, a)
		if r.Sign != 0 {
			r.Sign = -1
		}
		return r
	}
	return subAbs(a, b)
}

// Neg returns -a.
func Neg(a Int) Int {
	if a.Sign == 0 {
		return a
	}
	return Int{Sign: -a.Sign, Digits: a.Digits}
}
