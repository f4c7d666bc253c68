package moneta

import (
	"fmt"
	"math/big"
)

// Add returns the sum of moneys m and b.
// The result has the largest scale of the two, so no precision is lost.
// See also method [Money.Sub].
//
// Add returns an error if the currencies are not compatible,
// see [Currency.Compatible].
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	if !m.Curr().Compatible(b.Curr()) {
		return Money{}, ErrUnequalCurrencies
	}
	ms := NormalizeScale(m, b)
	a := new(big.Int).Add(ms[0].amt(), ms[1].amt())
	return newMoneyUnsafe(m.Curr(), a, ms[0].Scale()), nil
}

// Sub returns the difference of moneys m and b.
// The result has the largest scale of the two, so no precision is lost.
// See also method [Money.Add].
//
// Sub returns an error if the currencies are not compatible,
// see [Currency.Compatible].
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	if !m.Curr().Compatible(b.Curr()) {
		return Money{}, ErrUnequalCurrencies
	}
	ms := NormalizeScale(m, b)
	a := new(big.Int).Sub(ms[0].amt(), ms[1].amt())
	return newMoneyUnsafe(m.Curr(), a, ms[0].Scale()), nil
}

// Mul returns the product of money m and the multiplier e.
// The scale of the result is the sum of the scales, so multiplying
// {1045, USD, 2} by {25, 1} gives {26125, USD, 3}.
// The product is exact and never rounded; use [Money.TransformScale] to
// bring it to the desired scale.
func (m Money) Mul(e ScaledAmount) Money {
	a := new(big.Int).Mul(m.amt(), e.amt())
	return newMoneyUnsafe(m.Curr(), a, m.Scale()+e.Scale())
}

// MulInt returns the product of money m and the integer n.
// The scale of the result equals the scale of m.
func (m Money) MulInt(n int64) Money {
	return m.Mul(Int(n))
}

// HaveSameCurrency returns true if currencies of all moneys are compatible
// with the currency of the first one.
// An empty list is considered to have the same currency.
func HaveSameCurrency(ms ...Money) bool {
	for _, m := range ms[min(1, len(ms)):] {
		if !m.Curr().Compatible(ms[0].Curr()) {
			return false
		}
	}
	return true
}

// HaveSameAmount returns true if all moneys have the amount of the first one
// after bringing them to a common scale.
// Currencies are not compared, see [HaveSameCurrency].
// An empty list is considered to have the same amount.
func HaveSameAmount(ms ...Money) bool {
	ns := NormalizeScale(ms...)
	for _, n := range ns[min(1, len(ns)):] {
		if n.amt().Cmp(ns[0].amt()) != 0 {
			return false
		}
	}
	return true
}

// HasSubUnits returns true if the money is not a whole number of major units.
func (m Money) HasSubUnits() bool {
	d := radixPow(m.Curr(), m.Scale())
	return new(big.Int).Rem(m.amt(), d).Sign() != 0
}

// SameAmount returns true if moneys have compatible currencies and represent
// the same quantity, regardless of their scales.
// Thus, {100, USD, 2} and {1000, USD, 3} have the same amount although they
// are not equal, see [Money.Equal].
func (m Money) SameAmount(b Money) bool {
	return HaveSameCurrency(m, b) && HaveSameAmount(m, b)
}

// Cmp compares moneys after bringing them to a common scale and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if the currencies are not compatible.
func (m Money) Cmp(b Money) (int, error) {
	if !m.Curr().Compatible(b.Curr()) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrUnequalCurrencies)
	}
	ms := NormalizeScale(m, b)
	return ms[0].amt().Cmp(ms[1].amt()), nil
}
