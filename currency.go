package moneta

import (
	"errors"
	"fmt"
	"math"
)

// Currency type represents a currency descriptor: a code, one or more radices
// and an exponent.
// The zero value is an unnamed currency with effective radix 1 and exponent 0,
// it only serves as the currency of the zero [Money].
//
// Currency is immutable, two currencies are considered equal when they share
// the same code, see [Currency.Equal].
// Arithmetic operations require a stronger condition, see [Currency.Compatible].
type Currency struct {
	code     string  // unique code, e.g. USD
	radix    []int64 // subdivision factors, most significant first
	multi    bool    // radix was given as a list
	base     int64   // product of radix
	exponent int     // default scale
}

var ErrInvalidCurrency = errors.New("invalid currency")

// Built-in currencies.
// Use a [Registry] to make them, or any other currency, available by code.
var (
	USD = MustNewCurrency("USD", 10, 2)
	EUR = MustNewCurrency("EUR", 10, 2)
	CHF = MustNewCurrency("CHF", 10, 2)
	GBP = MustNewCurrency("GBP", 10, 2)
	JPY = MustNewCurrency("JPY", 10, 0)
	MGA = MustNewCurrency("MGA", 5, 1)
)

// NewCurrency returns a currency with a single radix.
//
// NewCurrency returns an error if:
//   - the code is empty;
//   - the radix is less than 2;
//   - the exponent is negative.
func NewCurrency(code string, radix int64, exponent int) (Currency, error) {
	c, err := newCurrency(code, []int64{radix}, exponent)
	if err != nil {
		return Currency{}, err
	}
	c.multi = false
	return c, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the currency cannot be constructed.
// It simplifies safe initialization of global variables holding currencies.
func MustNewCurrency(code string, radix int64, exponent int) Currency {
	c, err := NewCurrency(code, radix, exponent)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q, %v, %v) failed: %v", code, radix, exponent, err))
	}
	return c
}

// NewMultiRadixCurrency returns a currency with several subdivisions, such as
// the pre-decimal pound sterling with radices 20 (shillings) and 12 (pence).
// The radices are ordered from the most significant subdivision to the least one.
// A currency built by this function is never decimal, even with a single radix 10.
//
// NewMultiRadixCurrency returns an error if:
//   - the code is empty;
//   - the list of radices is empty;
//   - any radix is less than 2;
//   - the product of radices does not fit into int64;
//   - the exponent is negative.
func NewMultiRadixCurrency(code string, radices []int64, exponent int) (Currency, error) {
	if len(radices) == 0 {
		return Currency{}, fmt.Errorf("%w: no radix", ErrInvalidCurrency)
	}
	return newCurrency(code, radices, exponent)
}

// MustNewMultiRadixCurrency is like [NewMultiRadixCurrency] but panics if the
// currency cannot be constructed.
func MustNewMultiRadixCurrency(code string, radices []int64, exponent int) Currency {
	c, err := NewMultiRadixCurrency(code, radices, exponent)
	if err != nil {
		panic(fmt.Sprintf("NewMultiRadixCurrency(%q, %v, %v) failed: %v", code, radices, exponent, err))
	}
	return c
}

func newCurrency(code string, radices []int64, exponent int) (Currency, error) {
	if code == "" {
		return Currency{}, fmt.Errorf("%w: empty code", ErrInvalidCurrency)
	}
	if exponent < 0 {
		return Currency{}, fmt.Errorf("%w: negative exponent %v", ErrInvalidCurrency, exponent)
	}
	base := int64(1)
	for _, r := range radices {
		if r < 2 {
			return Currency{}, fmt.Errorf("%w: radix %v is less than 2", ErrInvalidCurrency, r)
		}
		if base > math.MaxInt64/r {
			return Currency{}, fmt.Errorf("%w: effective radix overflow", ErrInvalidCurrency)
		}
		base *= r
	}
	return Currency{
		code:     code,
		radix:    append([]int64(nil), radices...),
		multi:    true,
		base:     base,
		exponent: exponent,
	}, nil
}

// Code returns the unique code of the currency.
func (c Currency) Code() string {
	return c.code
}

// Radix returns a copy of the subdivision factors of the currency.
// A single-radix currency returns a slice of length 1.
func (c Currency) Radix() []int64 {
	return append([]int64(nil), c.radix...)
}

// IsMultiRadix returns true if the currency was built with a list of radices.
// See also constructor [NewMultiRadixCurrency].
func (c Currency) IsMultiRadix() bool {
	return c.multi
}

// EffectiveRadix returns the radix of a single-radix currency or the product
// of all radices of a multi-radix currency.
// For the pre-decimal pound sterling with radices 20 and 12 it returns 240.
func (c Currency) EffectiveRadix() int64 {
	if c.base == 0 {
		return 1
	}
	return c.base
}

// Exponent returns the default scale of the currency.
func (c Currency) Exponent() int {
	return c.exponent
}

// IsDecimal returns true if the currency has a single radix equal to 10.
// Only decimal currencies can be rendered with [Money.ToDecimal].
func (c Currency) IsDecimal() bool {
	return !c.multi && c.EffectiveRadix() == 10
}

// Compatible returns true if currencies share the same code, effective radix
// and exponent.
// Only amounts in compatible currencies can be added or subtracted.
func (c Currency) Compatible(d Currency) bool {
	return c.code == d.code &&
		c.EffectiveRadix() == d.EffectiveRadix() &&
		c.exponent == d.exponent
}

// Equal returns true if currencies have the same code.
func (c Currency) Equal(d Currency) bool {
	return c.code == d.code
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends the code.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (c Currency) AppendText(text []byte) ([]byte, error) {
	return append(text, c.Code()...), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the code.
// Decoding requires a [Registry], see [Registry.Resolve].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	curr := c.Code()
	currlen := len(curr)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + currlen + tquote
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
	buf = append(buf, curr...)
	buf = appendQuote(buf, tquote)
	buf = appendSpaces(buf, tspaces)

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(moneta.Currency="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

func appendSpaces(buf []byte, n int) []byte {
	for range n {
		buf = append(buf, ' ')
	}
	return buf
}

func appendQuote(buf []byte, n int) []byte {
	for range n {
		buf = append(buf, '"')
	}
	return buf
}
