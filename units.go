package moneta

import "math/big"

// Units decomposes the amount into units of the currency, from the major unit
// down to the smallest subdivision.
// For a currency with radices [b1, ..., bk] the result has k + 1 entries:
// the number of major units, the number of units of every subdivision but
// the last, and the final remainder.
// For example, {267, GBP with radices [20, 12], 1} is decomposed into
// [1, 2, 3] and {1045, USD, 2} into [10, 45].
//
// Division truncates towards zero, so every non-zero entry of a negative
// amount is negative.
// See also function [UnitsFunc].
func (m Money) Units() []*big.Int {
	c, scale := m.Curr(), m.Scale()
	radix := c.radix
	if len(radix) == 0 {
		radix = []int64{c.EffectiveRadix()}
	}

	// Divisors d[i] = size[i] * size[i+1] * ... * size[k-1]
	divisors := make([]*big.Int, len(radix))
	prod := big.NewInt(1)
	for i := len(radix) - 1; i >= 0; i-- {
		size := pow(big.NewInt(radix[i]), scale)
		prod = new(big.Int).Mul(prod, size)
		divisors[i] = prod
	}

	units := make([]*big.Int, 0, len(radix)+1)
	rem := new(big.Int).Set(m.amt())
	for _, d := range divisors {
		q, r := new(big.Int).QuoRem(rem, d, new(big.Int))
		units = append(units, q)
		rem = r
	}
	return append(units, rem)
}

// UnitsFunc returns the result of the projection applied to the units of the
// money and its currency.
// See also method [Money.Units].
func UnitsFunc[T any](m Money, fn func(units []*big.Int, c Currency) T) T {
	return fn(m.Units(), m.Curr())
}
