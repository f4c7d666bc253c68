package moneta

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// ToDecimal returns the value of the money in major units as a decimal
// string, e.g. "10.45" for {1045, USD, 2} or "-0.05" for {-5, USD, 2}.
// The fractional part is zero-padded to the scale of the money, and a money
// at scale 0 is rendered with a single zero after the point, e.g. "5.0".
// See also function [DecimalFunc].
//
// ToDecimal returns an error if the currency is not decimal,
// see [Currency.IsDecimal].
func (m Money) ToDecimal() (string, error) {
	if !m.Curr().IsDecimal() {
		return "", fmt.Errorf("formatting %v: %w", m.Curr(), ErrNonDecimalCurrency)
	}
	units := m.Units()
	return joinDecimal(units[0], units[1], m.Scale()), nil
}

// DecimalFunc returns the result of the projection applied to the decimal
// string of the money and its currency.
// See also method [Money.ToDecimal].
func DecimalFunc[T any](m Money, fn func(value string, c Currency) T) (T, error) {
	s, err := m.ToDecimal()
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(s, m.Curr()), nil
}

// Decimal returns the value of the money in major units as a [decimal.Decimal].
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if the currency is not decimal or if the value
// does not fit into [decimal.Decimal].
func (m Money) Decimal() (decimal.Decimal, error) {
	if !m.Curr().IsDecimal() {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", m, ErrNonDecimalCurrency)
	}
	d, err := decimal.Parse(formatDecimal(m.amt(), m.Scale()))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", m, err)
	}
	return d, nil
}

// formatDecimal returns amount / 10^scale as a decimal string.
// An integer is rendered without the point.
func formatDecimal(amount *big.Int, scale int) string {
	if scale == 0 {
		return amount.String()
	}
	whole, frac := new(big.Int).QuoRem(amount, pow(bigTen, scale), new(big.Int))
	return joinDecimal(whole, frac, scale)
}

// joinDecimal joins a whole part and a fractional part of the same sign.
// The fraction is zero-padded to the scale and has at least one digit.
func joinDecimal(whole, frac *big.Int, scale int) string {
	var sb strings.Builder
	if whole.Sign() == 0 && frac.Sign() < 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(whole.String())
	sb.WriteByte('.')
	digits := new(big.Int).Abs(frac).String()
	for range scale - len(digits) {
		sb.WriteByte('0')
	}
	sb.WriteString(digits)
	return sb.String()
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the money.
// Moneys in decimal currencies are rendered in major units, e.g. "USD 10.45",
// other moneys with the raw amount, e.g. "GBP 267".
// See also methods [Money.ToDecimal], [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.Curr().Code() + " " + m.value()
}

// value returns the decimal string for decimal currencies and the raw amount
// otherwise.
func (m Money) value() string {
	if s, err := m.ToDecimal(); err == nil {
		return s
	}
	return m.amt().String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example      | Description       |
//	| ------ | ------------ | ----------------- |
//	| %s, %v | USD 10.45    | Money             |
//	| %q     | "USD 10.45"  | Quoted money      |
//	| %d     | 1045         | Raw amount        |
//	| %c     | USD          | Currency          |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	// Body
	var body string
	switch verb {
	case 'd', 'D':
		body = m.amt().String()
	case 'c', 'C':
		body = m.Curr().Code()
	default:
		body = m.String()
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + len(body) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)
	buf = appendSpaces(buf, lspaces)
	buf = appendQuote(buf, lquote)
	buf = append(buf, body...)
	buf = appendQuote(buf, tquote)
	buf = appendSpaces(buf, tspaces)

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd', 'D', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(moneta.Money="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
