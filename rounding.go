package moneta

import (
	"fmt"
	"math/big"
)

// DivideFunc divides an amount by a positive factor and returns an integer.
// Implementations must not modify their arguments.
type DivideFunc func(amount, factor *big.Int) *big.Int

type roundingMode uint8

const (
	modeDown roundingMode = iota
	modeUp
	modeHalfUp
	modeHalfDown
	modeHalfEven
	modeHalfOdd
	modeHalfTowardsZero
	modeHalfAwayFromZero
	modeCustom
)

// Rounding is a strategy for dividing an integer amount by a positive factor.
// It is used by [Money.TransformScale] when reducing the scale.
// The zero value is [Down].
type Rounding struct {
	mode roundingMode
	fn   DivideFunc
}

// Built-in rounding strategies.
// Let q be the exact quotient of amount / factor:
//
//	| Strategy         | Result                                                |
//	| ---------------- | ----------------------------------------------------- |
//	| Down             | ⌊q⌋                                                   |
//	| Up               | ⌈q⌉                                                   |
//	| HalfUp           | nearest, ties to ⌈q⌉                                  |
//	| HalfDown         | nearest, ties to ⌊q⌋                                  |
//	| HalfEven         | nearest, ties to the even candidate                   |
//	| HalfOdd          | nearest, ties to the odd candidate                    |
//	| HalfTowardsZero  | nearest, ties to the candidate closer to zero         |
//	| HalfAwayFromZero | nearest, ties to the candidate farther from zero      |
var (
	Down             = Rounding{mode: modeDown}
	Up               = Rounding{mode: modeUp}
	HalfUp           = Rounding{mode: modeHalfUp}
	HalfDown         = Rounding{mode: modeHalfDown}
	HalfEven         = Rounding{mode: modeHalfEven}
	HalfOdd          = Rounding{mode: modeHalfOdd}
	HalfTowardsZero  = Rounding{mode: modeHalfTowardsZero}
	HalfAwayFromZero = Rounding{mode: modeHalfAwayFromZero}
)

// Custom returns a rounding strategy backed by an arbitrary divide function.
// A nil function yields [Down].
func Custom(fn DivideFunc) Rounding {
	if fn == nil {
		return Down
	}
	return Rounding{mode: modeCustom, fn: fn}
}

var roundingNames = [...]string{
	modeDown:             "down",
	modeUp:               "up",
	modeHalfUp:           "halfUp",
	modeHalfDown:         "halfDown",
	modeHalfEven:         "halfEven",
	modeHalfOdd:          "halfOdd",
	modeHalfTowardsZero:  "halfTowardsZero",
	modeHalfAwayFromZero: "halfAwayFromZero",
	modeCustom:           "custom",
}

// ParseRounding returns the built-in rounding strategy with the given name,
// such as "down" or "halfEven".
func ParseRounding(name string) (Rounding, error) {
	for m, n := range roundingNames {
		if n == name && roundingMode(m) != modeCustom {
			return Rounding{mode: roundingMode(m)}, nil
		}
	}
	return Rounding{}, fmt.Errorf("unknown rounding %q", name)
}

// String implements the [fmt.Stringer] interface and returns the name of
// the strategy.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rounding) String() string {
	return roundingNames[r.mode]
}

// Divide returns amount / factor rounded according to the strategy.
//
// Divide panics if factor is not positive.
func (r Rounding) Divide(amount, factor *big.Int) *big.Int {
	if factor.Sign() <= 0 {
		panic(fmt.Sprintf("%v.Divide(%v, %v) failed: factor must be positive", r, amount, factor))
	}
	if r.mode == modeCustom {
		return r.fn(amount, factor)
	}

	// Euclidean division equals floor division for positive divisors.
	floor, rem := new(big.Int).DivMod(amount, factor, new(big.Int))
	if rem.Sign() == 0 {
		return floor
	}
	ceil := new(big.Int).Add(floor, bigOne)

	// Comparing 2 * rem with factor tells the fraction relative to 1/2.
	half := new(big.Int).Lsh(rem, 1).Cmp(factor)

	switch r.mode {
	case modeDown:
		return floor
	case modeUp:
		return ceil
	}
	switch {
	case half < 0:
		return floor
	case half > 0:
		return ceil
	}

	// Tie
	switch r.mode {
	case modeHalfUp:
		return ceil
	case modeHalfDown:
		return floor
	case modeHalfEven:
		if floor.Bit(0) == 0 {
			return floor
		}
		return ceil
	case modeHalfOdd:
		if floor.Bit(0) == 1 {
			return floor
		}
		return ceil
	case modeHalfTowardsZero:
		if floor.Sign() >= 0 {
			return floor
		}
		return ceil
	case modeHalfAwayFromZero:
		if floor.Sign() >= 0 {
			return ceil
		}
		return floor
	default:
		panic(fmt.Sprintf("unknown rounding mode %d", r.mode))
	}
}

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)
