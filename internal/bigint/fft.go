package bigint

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// Mul returns a*b. Multiplication is the one operation where a naive
// schoolbook pass doesn't scale to the digit counts the interpreter sees
// (10**40-and-up integers built by repeated multiplication). Rather than
// hand-rolling a complex-plane FFT embed/transform/round/carry pipeline —
// float64 doesn't carry enough precision margin and getting the rounding
// exactly right is its own small research project — the digit vectors are
// round-tripped through math/big.Int and multiplied with bigfft, which
// implements the same embed-transform-carry idea with a precision budget
// chosen for exactness.
func Mul(a, b Int) Int {
	if a.Sign == 0 || b.Sign == 0 {
		return Zero
	}
	ba := toBigInt(a)
	bb := toBigInt(b)
	product := bigfft.Mul(ba, bb)
	result := fromBigInt(product)
	result.Sign = a.Sign * b.Sign
	return result
}

func toBigInt(a Int) *big.Int {
	n := new(big.Int)
	base := big.NewInt(Base)
	for i := len(a.Digits) - 1; i >= 0; i-- {
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(a.Digits[i])))
	}
	return n
}

func fromBigInt(n *big.Int) Int {
	if n.Sign() == 0 {
		return Zero
	}
	mag := new(big.Int).Abs(n)
	base := big.NewInt(Base)
	var digits []int32
	rem := new(big.Int)
	for mag.Sign() != 0 {
		mag.DivMod(mag, base, rem)
		digits = append(digits, int32(rem.Int64()))
	}
	return normalize(1, digits)
}
