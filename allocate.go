package moneta

import (
	"fmt"
	"math/big"
	"slices"
)

// Allocate returns moneys that distribute the amount across the ratios using
// the [largest remainder method].
// Ratios can be percentages or proportions: [50, 50] and [1, 1] produce the
// same result.
// Fractional ratios are expressed as scaled amounts, e.g. 50.5 as {505, 1},
// and the result is then raised to the scale m.Scale() + the largest ratio
// scale, so that no precision is lost.
//
// Every share is first rounded down.
// The remaining units go one by one to the shares with the largest fractional
// parts, the earliest share wins a tie.
// Zero ratios always receive zero and never take part in the distribution.
// The sum of the returned amounts always equals the amount of m.
// See also methods [Money.AllocateInts] and [Money.Split].
//
// Allocate returns an error if there are no ratios, if any ratio is negative,
// or if all ratios are zero.
func (m Money) Allocate(ratios ...ScaledAmount) ([]Money, error) {
	res, err := m.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("allocating %v across %v: %w", m, ratios, err)
	}
	return res, nil
}

// AllocateInts is like [Money.Allocate] but accepts integer ratios.
func (m Money) AllocateInts(ratios ...int64) ([]Money, error) {
	rs := make([]ScaledAmount, len(ratios))
	for i, r := range ratios {
		rs[i] = Int(r)
	}
	return m.Allocate(rs...)
}

// Split returns a slice of moneys that sum up to m, ensuring the parts are
// as equal as possible.
// The remainder is distributed among the first parts of the slice.
//
// Split returns an error if the number of parts is not positive.
func (m Money) Split(parts int) ([]Money, error) {
	if parts < 1 {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, ErrInvalidRatios)
	}
	rs := make([]ScaledAmount, parts)
	for i := range rs {
		rs[i] = Int(1)
	}
	return m.Allocate(rs...)
}

func (m Money) allocate(ratios []ScaledAmount) ([]Money, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("%w: no ratios", ErrInvalidRatios)
	}

	// Ratio normalization
	scale := 0
	for _, r := range ratios {
		scale = max(scale, r.Scale())
	}
	weights := make([]*big.Int, len(ratios))
	nonzero := false
	for i, r := range ratios {
		w := r.rescaled(scale)
		switch w.Sign() {
		case -1:
			return nil, fmt.Errorf("%w: negative ratio %v", ErrInvalidRatios, r)
		case 1:
			nonzero = true
		}
		weights[i] = w
	}
	if !nonzero {
		return nil, fmt.Errorf("%w: all ratios are zero", ErrInvalidRatios)
	}

	// Upscaling
	m = m.transformScale(m.Scale()+scale, Down)

	shares := distribute(m.amt(), weights)
	res := make([]Money, len(shares))
	for i, s := range shares {
		res[i] = newMoneyUnsafe(m.Curr(), s, m.Scale())
	}
	return res, nil
}

// distribute splits the amount proportionally to non-negative weights with
// at least one positive weight.
func distribute(amount *big.Int, weights []*big.Int) []*big.Int {
	total := new(big.Int)
	for _, w := range weights {
		total.Add(total, w)
	}

	// Floors and remainders of amount * w / total
	shares := make([]*big.Int, len(weights))
	rems := make([]*big.Int, len(weights))
	candidates := make([]int, 0, len(weights))
	left := new(big.Int).Set(amount)
	for i, w := range weights {
		if w.Sign() == 0 {
			shares[i] = new(big.Int)
			continue
		}
		p := new(big.Int).Mul(amount, w)
		shares[i], rems[i] = p.DivMod(p, total, new(big.Int))
		left.Sub(left, shares[i])
		candidates = append(candidates, i)
	}

	// Fractional parts share the denominator, so remainders order them.
	slices.SortStableFunc(candidates, func(i, j int) int {
		return rems[j].Cmp(rems[i])
	})

	// Remainder distribution
	for _, i := range candidates {
		if left.Sign() == 0 {
			break
		}
		shares[i].Add(shares[i], bigOne)
		left.Sub(left, bigOne)
	}
	return shares
}
