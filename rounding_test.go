package moneta

import (
	"math/big"
	"testing"
)

func TestRounding_Divide(t *testing.T) {
	tests := []struct {
		amount, factor int64
		want           [8]int64 // Down, Up, HalfUp, HalfDown, HalfEven, HalfOdd, HalfTowardsZero, HalfAwayFromZero
	}{
		{0, 10, [8]int64{0, 0, 0, 0, 0, 0, 0, 0}},
		{10, 10, [8]int64{1, 1, 1, 1, 1, 1, 1, 1}},
		{-10, 10, [8]int64{-1, -1, -1, -1, -1, -1, -1, -1}},

		// Below half
		{14, 10, [8]int64{1, 2, 1, 1, 1, 1, 1, 1}},
		{-14, 10, [8]int64{-2, -1, -1, -1, -1, -1, -1, -1}},

		// Above half
		{16, 10, [8]int64{1, 2, 2, 2, 2, 2, 2, 2}},
		{-16, 10, [8]int64{-2, -1, -2, -2, -2, -2, -2, -2}},

		// Ties
		{15, 10, [8]int64{1, 2, 2, 1, 2, 1, 1, 2}},
		{25, 10, [8]int64{2, 3, 3, 2, 2, 3, 2, 3}},
		{-15, 10, [8]int64{-2, -1, -1, -2, -2, -1, -1, -2}},
		{-25, 10, [8]int64{-3, -2, -2, -3, -2, -3, -2, -3}},
		{5, 10, [8]int64{0, 1, 1, 0, 0, 1, 0, 1}},
		{-5, 10, [8]int64{-1, 0, 0, -1, 0, -1, 0, -1}},
		{10425, 10, [8]int64{1042, 1043, 1043, 1042, 1042, 1043, 1042, 1043}},
		{10435, 10, [8]int64{1043, 1044, 1044, 1043, 1044, 1043, 1043, 1044}},

		// Odd factor never ties
		{7, 3, [8]int64{2, 3, 2, 2, 2, 2, 2, 2}},
		{-7, 3, [8]int64{-3, -2, -2, -2, -2, -2, -2, -2}},
		{3, 6, [8]int64{0, 1, 1, 0, 0, 1, 0, 1}},
	}
	modes := [8]Rounding{Down, Up, HalfUp, HalfDown, HalfEven, HalfOdd, HalfTowardsZero, HalfAwayFromZero}
	for _, tt := range tests {
		for i, r := range modes {
			a, f := big.NewInt(tt.amount), big.NewInt(tt.factor)
			got := r.Divide(a, f)
			if got.Cmp(big.NewInt(tt.want[i])) != 0 {
				t.Errorf("%v.Divide(%v, %v) = %v, want %v", r, tt.amount, tt.factor, got, tt.want[i])
			}
			if a.Int64() != tt.amount || f.Int64() != tt.factor {
				t.Errorf("%v.Divide(%v, %v) modified its arguments", r, tt.amount, tt.factor)
			}
		}
	}
}

func TestRounding_Bounds(t *testing.T) {
	modes := []Rounding{Down, Up, HalfUp, HalfDown, HalfEven, HalfOdd, HalfTowardsZero, HalfAwayFromZero}
	for amount := int64(-50); amount <= 50; amount++ {
		for factor := int64(1); factor <= 12; factor++ {
			a, f := big.NewInt(amount), big.NewInt(factor)
			down, up := Down.Divide(a, f), Up.Divide(a, f)

			// down ≤ amount / factor ≤ up
			if new(big.Int).Mul(down, f).Cmp(a) > 0 || new(big.Int).Mul(up, f).Cmp(a) < 0 {
				t.Errorf("Divide(%v, %v): %v and %v do not bound the quotient", amount, factor, down, up)
			}
			for _, r := range modes {
				got := r.Divide(a, f)
				if got.Cmp(down) < 0 || got.Cmp(up) > 0 {
					t.Errorf("%v.Divide(%v, %v) = %v, want in [%v, %v]", r, amount, factor, got, down, up)
				}
			}
		}
	}
}

func TestRounding_Divide_Panic(t *testing.T) {
	tests := []int64{0, -1, -10}
	for _, f := range tests {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Divide(1, %v) did not panic", f)
				}
			}()
			HalfEven.Divide(bigOne, big.NewInt(f))
		}()
	}
}

func TestCustom(t *testing.T) {
	trunc := Custom(func(amount, factor *big.Int) *big.Int {
		return new(big.Int).Quo(amount, factor)
	})
	got := trunc.Divide(big.NewInt(-19), big.NewInt(10))
	if got.Int64() != -1 {
		t.Errorf("%v.Divide(-19, 10) = %v, want -1", trunc, got)
	}
	if trunc.String() != "custom" {
		t.Errorf("Custom(fn).String() = %q, want %q", trunc.String(), "custom")
	}

	r := Custom(nil)
	if r.String() != Down.String() {
		t.Errorf("Custom(nil) = %v, want %v", r, Down)
	}
}

func TestParseRounding(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []Rounding{Down, Up, HalfUp, HalfDown, HalfEven, HalfOdd, HalfTowardsZero, HalfAwayFromZero}
		for _, want := range tests {
			got, err := ParseRounding(want.String())
			if err != nil {
				t.Errorf("ParseRounding(%q) failed: %v", want.String(), err)
				continue
			}
			if got.String() != want.String() {
				t.Errorf("ParseRounding(%q) = %v, want %v", want.String(), got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "custom", "HALFEVEN", "nearest"}
		for _, tt := range tests {
			_, err := ParseRounding(tt)
			if err == nil {
				t.Errorf("ParseRounding(%q) did not fail", tt)
			}
		}
	})
}

func TestRounding_ZeroValue(t *testing.T) {
	var r Rounding
	if r.String() != Down.String() {
		t.Errorf("Rounding{} = %v, want %v", r, Down)
	}
}
