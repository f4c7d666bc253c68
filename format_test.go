package moneta

import (
	"errors"
	"fmt"
	"testing"

	"github.com/govalues/decimal"
)

func TestMoney_ToDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr   Currency
			amount string
			scale  int
			want   string
		}{
			{USD, "1045", 2, "10.45"},
			{USD, "-1045", 2, "-10.45"},
			{USD, "5", 2, "0.05"},
			{USD, "-5", 2, "-0.05"},
			{USD, "-100", 2, "-1.00"},
			{USD, "0", 2, "0.00"},
			{USD, "1", 5, "0.00001"},
			{USD, "-1", 5, "-0.00001"},
			{USD, "1045", 0, "1045.0"},
			{USD, "-1045", 0, "-1045.0"},
			{USD, "0", 0, "0.0"},
			{JPY, "1045", 0, "1045.0"},
			{JPY, "-5", 0, "-5.0"},
			{JPY, "1045", 1, "104.5"},
			{USD, "123456789012345678901234567890", 2, "1234567890123456789012345678.90"},
			{MustNewCurrency("BTC", 10, 8), "1", 8, "0.00000001"},
		}
		for _, tt := range tests {
			m := MustParse(tt.curr, tt.amount, tt.scale)
			got, err := m.ToDecimal()
			if err != nil {
				t.Errorf("%v.ToDecimal() failed: %v", m, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ToDecimal() of %v at scale %v = %q, want %q", tt.amount, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []Currency{
			MGA,
			MustNewCurrency("XXX", 100, 1),
			MustNewCurrency("XXX", 20, 1),
			MustNewMultiRadixCurrency("USD", []int64{10}, 2),
			MustNewMultiRadixCurrency("GBP", []int64{20, 12}, 1),
			{},
		}
		for _, c := range tests {
			m := NewDefault(c, 1)
			_, err := m.ToDecimal()
			if !errors.Is(err, ErrNonDecimalCurrency) {
				t.Errorf("%v.ToDecimal() = %v, want %v", m, err, ErrNonDecimalCurrency)
			}
		}
	})
}

func TestDecimalFunc(t *testing.T) {
	m := NewDefault(USD, 1045)
	got, err := DecimalFunc(m, func(value string, c Currency) string {
		return value + " " + c.Code()
	})
	if err != nil {
		t.Errorf("DecimalFunc(%v) failed: %v", m, err)
		return
	}
	if want := "10.45 USD"; got != want {
		t.Errorf("DecimalFunc(%v) = %q, want %q", m, got, want)
	}

	_, err = DecimalFunc(NewDefault(MGA, 1), func(string, Currency) int { return 1 })
	if !errors.Is(err, ErrNonDecimalCurrency) {
		t.Errorf("DecimalFunc(MGA) = %v, want %v", err, ErrNonDecimalCurrency)
	}
}

func TestMoney_Decimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    Money
			want string
		}{
			{NewDefault(USD, 1045), "10.45"},
			{NewDefault(USD, -5), "-0.05"},
			{NewDefault(JPY, 1045), "1045"},
			{MustNewFromInt64(USD, 10450, 3), "10.450"},
		}
		for _, tt := range tests {
			got, err := tt.m.Decimal()
			if err != nil {
				t.Errorf("%v.Decimal() failed: %v", tt.m, err)
				continue
			}
			if want := decimal.MustParse(tt.want); got != want {
				t.Errorf("%v.Decimal() = %v, want %v", tt.m, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []Money{
			NewDefault(MGA, 1),
			MustParse(USD, "123456789012345678901234567890", 2),
		}
		for _, m := range tests {
			_, err := m.Decimal()
			if err == nil {
				t.Errorf("%v.Decimal() did not fail", m)
			}
		}
	})
}

func TestMoney_String(t *testing.T) {
	gbp := MustNewMultiRadixCurrency("GBP", []int64{20, 12}, 1)
	tests := []struct {
		m    Money
		want string
	}{
		{NewDefault(USD, 1045), "USD 10.45"},
		{NewDefault(USD, -5), "USD -0.05"},
		{NewDefault(JPY, 1045), "JPY 1045.0"},
		{NewDefault(MGA, 13), "MGA 13"},
		{NewDefault(gbp, 267), "GBP 267"},
		{NewDefault(MustNewCurrency("XXX", 100, 1), 250), "XXX 250"},
		{MustNewFromInt64(USD, 5, 0), "USD 5.0"},
	}
	for _, tt := range tests {
		got := tt.m.String()
		if got != tt.want {
			t.Errorf("Money.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoney_Format(t *testing.T) {
	tests := []struct {
		m      Money
		format string
		want   string
	}{
		{NewDefault(USD, 1045), "%v", "USD 10.45"},
		{NewDefault(USD, 1045), "%s", "USD 10.45"},
		{NewDefault(USD, 1045), "%q", "\"USD 10.45\""},
		{NewDefault(USD, 1045), "%d", "1045"},
		{NewDefault(USD, -1045), "%d", "-1045"},
		{NewDefault(USD, 1045), "%c", "USD"},
		{NewDefault(USD, 1045), "%12v", "   USD 10.45"},
		{NewDefault(USD, 1045), "%-12v", "USD 10.45   "},
		{NewDefault(USD, 1045), "%13q", "  \"USD 10.45\""},
		{NewDefault(USD, 1045), "%6d", "  1045"},
		{NewDefault(USD, 1045), "%-6d|", "1045  |"},
		{NewDefault(USD, 1045), "%5c", "  USD"},
		{NewDefault(USD, 1045), "%2v", "USD 10.45"},
		{NewDefault(MGA, 13), "%v", "MGA 13"},
		{NewDefault(JPY, 5), "%v", "JPY 5.0"},
		{NewDefault(JPY, 5), "%d", "5"},
		{NewDefault(USD, 1045), "%x", "%!x(moneta.Money=USD 10.45)"},
		{NewDefault(USD, 1045), "%f", "%!f(moneta.Money=USD 10.45)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.m)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.m, got, tt.want)
		}
	}
}
