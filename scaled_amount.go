package moneta

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

var ErrInvalidScale = errors.New("invalid scale")

// ScaledAmount represents a rate, ratio or multiplier as amount / 10^scale.
// It expresses fractional values without floating-point numbers,
// for example 50.5 is {505, 1}.
// The zero value is 0 with scale 0.
type ScaledAmount struct {
	amount *big.Int // never modified after construction
	scale  int
}

// NewScaledAmount returns a scaled amount equal to amount / 10^scale.
//
// NewScaledAmount returns an error if the scale is negative.
func NewScaledAmount(amount int64, scale int) (ScaledAmount, error) {
	return NewScaledAmountFromBigInt(big.NewInt(amount), scale)
}

// MustNewScaledAmount is like [NewScaledAmount] but panics if the scaled
// amount cannot be constructed.
func MustNewScaledAmount(amount int64, scale int) ScaledAmount {
	s, err := NewScaledAmount(amount, scale)
	if err != nil {
		panic(fmt.Sprintf("NewScaledAmount(%v, %v) failed: %v", amount, scale, err))
	}
	return s
}

// NewScaledAmountFromBigInt is like [NewScaledAmount] but accepts an
// arbitrary-precision amount.
// The amount is copied.
func NewScaledAmountFromBigInt(amount *big.Int, scale int) (ScaledAmount, error) {
	if scale < 0 {
		return ScaledAmount{}, fmt.Errorf("%w: %v is negative", ErrInvalidScale, scale)
	}
	if amount == nil {
		return ScaledAmount{}, fmt.Errorf("%w: nil integer", ErrInvalidAmount)
	}
	return ScaledAmount{amount: new(big.Int).Set(amount), scale: scale}, nil
}

// Int returns a scaled amount equal to the integer n (scale 0).
func Int(n int64) ScaledAmount {
	return ScaledAmount{amount: big.NewInt(n)}
}

// NewScaledAmountFromDecimal returns a scaled amount with the coefficient
// and scale of the decimal.
func NewScaledAmountFromDecimal(d decimal.Decimal) ScaledAmount {
	amount := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		amount.Neg(amount)
	}
	return ScaledAmount{amount: amount, scale: d.Scale()}
}

// ParseScaledAmount converts a decimal string, such as "50.5" or "-0.125",
// to a scaled amount that keeps all digits of the input.
// See also [decimal.Parse].
func ParseScaledAmount(s string) (ScaledAmount, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return ScaledAmount{}, fmt.Errorf("parsing scaled amount: %w", err)
	}
	return NewScaledAmountFromDecimal(d), nil
}

// MustParseScaledAmount is like [ParseScaledAmount] but panics if the string
// cannot be parsed.
func MustParseScaledAmount(s string) ScaledAmount {
	r, err := ParseScaledAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseScaledAmount(%q) failed: %v", s, err))
	}
	return r
}

// Amount returns a copy of the integer amount.
func (s ScaledAmount) Amount() *big.Int {
	return new(big.Int).Set(s.amt())
}

// Scale returns the number of decimal digits of the fractional part.
func (s ScaledAmount) Scale() int {
	return s.scale
}

// Sign returns:
//
//	-1 if s < 0
//	 0 if s = 0
//	+1 if s > 0
func (s ScaledAmount) Sign() int {
	return s.amt().Sign()
}

// String implements the [fmt.Stringer] interface and returns the decimal
// representation of the scaled amount, e.g. "50.5".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s ScaledAmount) String() string {
	return formatDecimal(s.amt(), s.scale)
}

func (s ScaledAmount) amt() *big.Int {
	if s.amount == nil {
		return bigZero
	}
	return s.amount
}

// rescaled returns the amount multiplied by 10^(scale - s.scale).
// The scale must not be less than s.scale.
func (s ScaledAmount) rescaled(scale int) *big.Int {
	if scale == s.scale {
		return s.amt()
	}
	return new(big.Int).Mul(s.amt(), pow(bigTen, scale-s.scale))
}
