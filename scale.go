package moneta

import (
	"fmt"
	"math/big"
)

// radixPow returns EffectiveRadix^exp of the currency.
func radixPow(c Currency, exp int) *big.Int {
	return pow(big.NewInt(c.EffectiveRadix()), exp)
}

// TransformScale returns a money converted to the given scale.
// Raising the scale multiplies the amount by EffectiveRadix^(scale - m.Scale())
// and never loses precision.
// Lowering the scale divides the amount by EffectiveRadix^(m.Scale() - scale)
// using the rounding strategy, so it is lossy by construction.
// If the scale does not change, the money is returned unchanged.
// See also methods [Money.TrimScale] and function [NormalizeScale].
//
// TransformScale returns an error if the scale is negative.
func (m Money) TransformScale(scale int, mode Rounding) (Money, error) {
	if scale < 0 {
		return Money{}, fmt.Errorf("transforming %v to scale %v: %w", m, scale, ErrInvalidScale)
	}
	return m.transformScale(scale, mode), nil
}

// MustTransformScale is like [Money.TransformScale] but panics if the scale
// is negative.
func (m Money) MustTransformScale(scale int, mode Rounding) Money {
	n, err := m.TransformScale(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("%v.TransformScale(%v, %v) failed: %v", m, scale, mode, err))
	}
	return n
}

// transformScale is like TransformScale but requires a non-negative scale.
func (m Money) transformScale(scale int, mode Rounding) Money {
	c, a := m.Curr(), m.amt()
	switch {
	case scale > m.Scale():
		a = new(big.Int).Mul(a, radixPow(c, scale-m.Scale()))
	case scale < m.Scale():
		a = mode.Divide(a, radixPow(c, m.Scale()-scale))
	default:
		return m
	}
	return newMoneyUnsafe(c, a, scale)
}

// TrimScale returns a money with trailing radix digits removed as long as
// no precision is lost, but never below the exponent of the currency.
// A money with a scale below the exponent is raised to the exponent.
// If the scale does not change, the money itself is returned.
// For example, {500000, USD, 5} is trimmed to {500, USD, 2} and
// {99950, USD, 4} to {9995, USD, 3}.
func (m Money) TrimScale() Money {
	c := m.Curr()
	scale := max(m.Scale()-m.trailingZeros(), c.Exponent())
	if scale == m.Scale() {
		return m
	}
	return m.transformScale(scale, Down)
}

// trailingZeros returns the largest k ≤ m.Scale() such that the amount is
// divisible by EffectiveRadix^k.
// Counting beyond the scale is pointless since the exponent is never negative.
func (m Money) trailingZeros() int {
	a := m.amt()
	if a.Sign() == 0 {
		return m.Scale()
	}
	radix := big.NewInt(m.Curr().EffectiveRadix())
	if radix.Cmp(bigOne) == 0 {
		return m.Scale()
	}
	q, r := new(big.Int).Set(a), new(big.Int)
	k := 0
	for k < m.Scale() {
		q.QuoRem(q, radix, r)
		if r.Sign() != 0 {
			break
		}
		k++
	}
	return k
}

// NormalizeScale returns moneys raised to the largest scale among them.
// Moneys already at that scale are returned unchanged.
// Normalization never loses precision.
func NormalizeScale(ms ...Money) []Money {
	scale := 0
	for _, m := range ms {
		scale = max(scale, m.Scale())
	}
	res := make([]Money, len(ms))
	for i, m := range ms {
		res[i] = m.transformScale(scale, Down)
	}
	return res
}
