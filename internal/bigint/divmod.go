package bigint

import "github.com/pkg/errors"

// ErrDivisionByZero is the sentinel wrapped by DivMod when the divisor is
// zero. Callers needing the evaluator's DivisionByZero taxonomy kind test
// against this with errors.Is (via github.com/pkg/errors's Cause chain).
var ErrDivisionByZero = errors.New("bigint: division by zero")

// DivMod returns the floor quotient and floor-sign remainder of a/b: the
// final sign is the product of operand signs, and when that sign is
// negative with a nonzero remainder the magnitude-based quotient is
// decremented by one (rounding toward negative infinity). The remainder's
// sign matches the divisor's, or is zero.
func DivMod(a, b Int) (q, r Int, err error) {
	if b.Sign == 0 {
		return Zero, Zero, errors.WithStack(ErrDivisionByZero)
	}
	if a.Sign == 0 {
		return Zero, Zero, nil
	}

	resultSign := a.Sign * b.Sign
	absA := Int{Sign: 1, Digits: a.Digits}
	absB := Int{Sign: 1, Digits: b.Digits}

	quotMag, remMag := divide(absA, absB)
	q = quotMag
	if q.Sign != 0 {
		q.Sign = resultSign
	}
	if resultSign < 0 && remMag.Sign != 0 {
		q = Sub(q, FromInt64(1))
	}
	r = Sub(a, Mul(q, b))
	return q, r, nil
}

// divide implements a recursive divide-and-conquer scheme over nonnegative
// magnitudes: small operands (a has at most 2x b's digit count) go through
// basicDivide directly; larger ones split a at the halfway digit count and
// recombine.
func divide(a, b Int) (q, r Int) {
	if cmpAbs(a, b) < 0 {
		return Zero, a
	}
	if len(a.Digits) <= 2*len(b.Digits) {
		return basicDivide(a, b)
	}

	m := len(a.Digits) / 2
	high := highDigits(a, m)
	low := lowDigits(a, m)

	qHigh, rHigh := divide(high, b)
	temp := Add(shiftLeft(rHigh, m), low)
	qLow, rLow := divide(temp, b)

	q = Add(shiftLeft(qHigh, m), qLow)
	return q, rLow
}

// basicDivide walks a's digits from most to least significant, maintaining
// a running remainder and binary-searching each quotient digit in
// [0, Base-1] against mulShort(b, ·).
func basicDivide(a, b Int) (q, r Int) {
	quotient := make([]int32, len(a.Digits))
	var remainder Int

	for i := len(a.Digits) - 1; i >= 0; i-- {
		remainder = prependDigit(remainder, a.Digits[i])
		if cmpAbs(remainder, b) < 0 {
			quotient[i] = 0
			continue
		}
		lo, hi, best := int32(0), int32(Base-1), int32(0)
		for lo <= hi {
			mid := (lo + hi) / 2
			prod := mulShort(b, mid)
			if cmpAbs(prod, remainder) <= 0 {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		quotient[i] = best
		remainder = subAbs(remainder, mulShort(b, best))
	}

	q = normalize(1, quotient)
	r = remainder
	return q, r
}

// prependDigit shifts remainder left by one base-Base place and inserts d
// as the new least-significant digit (mirrors the original's
// remainder.insert(remainder.begin(), a.s[i])).
func prependDigit(remainder Int, d int32) Int {
	digits := make([]int32, 0, len(remainder.Digits)+1)
	digits = append(digits, d)
	digits = append(digits, remainder.Digits...)
	return normalize(1, digits)
}

// mulShort multiplies a magnitude by a single base-Base digit (0..Base-1).
func mulShort(a Int, k int32) Int {
	if a.Sign == 0 || k == 0 {
		return Zero
	}
	digits := make([]int32, 0, len(a.Digits)+1)
	var carry int64
	for _, d := range a.Digits {
		cur := int64(d)*int64(k) + carry
		digits = append(digits, int32(cur%Base))
		carry = cur / Base
	}
	for carry > 0 {
		digits = append(digits, int32(carry%Base))
		carry /= Base
	}
	return normalize(1, digits)
}

// highDigits returns the magnitude formed by the digits at index >= n
// (the high half when splitting at n digits).
func highDigits(a Int, n int) Int {
	if n >= len(a.Digits) {
		return Zero
	}
	digits := append([]int32(nil), a.Digits[n:]...)
	return normalize(1, digits)
}

// lowDigits returns the magnitude formed by the digits at index < n.
func lowDigits(a Int, n int) Int {
	if len(a.Digits) == 0 || n == 0 {
		return Zero
	}
	if n > len(a.Digits) {
		n = len(a.Digits)
	}
	digits := append([]int32(nil), a.Digits[:n]...)
	return normalize(1, digits)
}

// shiftLeft multiplies a magnitude by Base^k (prepends k zero digits).
func shiftLeft(a Int, k int) Int {
	if a.Sign == 0 || k == 0 {
		return a
	}
	digits := make([]int32, k, k+len(a.Digits))
	digits = append(digits, a.Digits...)
	return normalize(1, digits)
}
