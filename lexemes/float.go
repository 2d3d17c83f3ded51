package lexemes

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Float is the exact value Mantissa × 10^Exponent of a floating literal.
type Float struct {
	Mantissa *big.Int
	Exponent int64
}

var ten = big.NewInt(10)

func (f *Float) Rat() *big.Rat {
	pow := new(big.Int).Exp(ten, big.NewInt(abs(f.Exponent)), nil)
	if f.Exponent >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Mul(f.Mantissa, pow))
	}
	return new(big.Rat).SetFrac(f.Mantissa, pow)
}

// Decimal returns the literal as an arbitrary-precision decimal.
// Exponents are bounded by the scanner, so they fit an int32.
func (f *Float) Decimal() *apd.Decimal {
	coeff := new(apd.BigInt).SetMathBigInt(f.Mantissa)
	return apd.NewWithBigInt(coeff, int32(f.Exponent))
}

func (f *Float) String() string {
	return f.Decimal().String()
}

func abs(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}
