package moneta

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrUnequalCurrencies  = errors.New("unequal currencies")
	ErrNonDecimalCurrency = errors.New("non-decimal currency")
	ErrInvalidRatios      = errors.New("invalid ratios")
)

// maxSafeInteger is the largest integer n such that n and n + 1 are both
// exactly representable as float64.
const maxSafeInteger = 1<<53 - 1

// amountMarker is the optional suffix of textual amounts, e.g. "5000n".
const amountMarker = 'n'

// Money type represents a monetary value as an exact integer amount of the
// smallest subdivision implied by its currency and scale.
// The value of a money equals amount / EffectiveRadix^scale major units,
// so USD 10.45 is {1045, USD, 2} or {10450, USD, 3}.
// The zero value is 0 in the zero [Currency] at scale 0.
// Money is immutable and safe for concurrent use by multiple goroutines.
type Money struct {
	amount *big.Int // never modified after construction
	curr   Currency
	scale  int // number of radix digits of subdivision
}

// newMoneyUnsafe creates a money without checking the scale and without
// copying the amount.
// Use it only if you are absolutely sure that the amount is not shared.
func newMoneyUnsafe(c Currency, amount *big.Int, scale int) Money {
	return Money{amount: amount, curr: c, scale: scale}
}

// New returns a money with the given amount and scale.
// The amount is copied.
//
// New returns an error if the amount is nil or the scale is negative.
func New(curr Currency, amount *big.Int, scale int) (Money, error) {
	if amount == nil {
		return Money{}, fmt.Errorf("%w: nil integer", ErrInvalidAmount)
	}
	if scale < 0 {
		return Money{}, fmt.Errorf("%w: %v is negative", ErrInvalidScale, scale)
	}
	return newMoneyUnsafe(curr, new(big.Int).Set(amount), scale), nil
}

// MustNew is like [New] but panics if the money cannot be constructed.
func MustNew(curr Currency, amount *big.Int, scale int) Money {
	m, err := New(curr, amount, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v, %v) failed: %v", curr, amount, scale, err))
	}
	return m
}

// NewFromInt64 returns a money with the given amount and scale.
//
// NewFromInt64 returns an error if the scale is negative.
func NewFromInt64(curr Currency, amount int64, scale int) (Money, error) {
	return New(curr, big.NewInt(amount), scale)
}

// MustNewFromInt64 is like [NewFromInt64] but panics if the money cannot be constructed.
// It simplifies safe initialization of global variables holding monetary values.
func MustNewFromInt64(curr Currency, amount int64, scale int) Money {
	m, err := NewFromInt64(curr, amount, scale)
	if err != nil {
		panic(fmt.Sprintf("NewFromInt64(%v, %v, %v) failed: %v", curr, amount, scale, err))
	}
	return m
}

// NewDefault returns a money with the given amount at the default scale of
// the currency, see [Currency.Exponent].
// For example, NewDefault(USD, 1045) is USD 10.45.
func NewDefault(curr Currency, amount int64) Money {
	return newMoneyUnsafe(curr, big.NewInt(amount), curr.Exponent())
}

// Zero returns 0 in the currency at its default scale.
func Zero(curr Currency) Money {
	return newMoneyUnsafe(curr, new(big.Int), curr.Exponent())
}

// Parse converts an integer string to a money with the given scale.
// The string must be an optional minus sign followed by decimal digits,
// optionally followed by the marker 'n', for example "-1045" or "1045n".
//
// Parse returns an error if the string is malformed or the scale is negative.
func Parse(curr Currency, amount string, scale int) (Money, error) {
	a, err := parseAmount(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	if scale < 0 {
		return Money{}, fmt.Errorf("%w: %v is negative", ErrInvalidScale, scale)
	}
	return newMoneyUnsafe(curr, a, scale), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(curr Currency, amount string, scale int) Money {
	m, err := Parse(curr, amount, scale)
	if err != nil {
		panic(fmt.Sprintf("Parse(%v, %q, %v) failed: %v", curr, amount, scale, err))
	}
	return m
}

// parseAmount parses "[-]digits[n]".
func parseAmount(s string) (*big.Int, error) {
	if n := len(s); n > 0 && s[n-1] == amountMarker {
		s = s[:n-1]
	}
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return nil, fmt.Errorf("%w: no digits", ErrInvalidAmount)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, fmt.Errorf("%w: not an integer string", ErrInvalidAmount)
		}
	}
	a, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: not an integer string", ErrInvalidAmount)
	}
	return a, nil
}

// NewFromFloat64 converts an integral float to a money with the given scale.
// The float is interpreted as an amount of the smallest subdivision,
// not as a value in major units.
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the float has a fractional part;
//   - the float is outside the range [-(2^53 - 1), 2^53 - 1], where it cannot
//     hold an exact integer; use [New] or [Parse] for such amounts;
//   - the scale is negative.
func NewFromFloat64(curr Currency, amount float64, scale int) (Money, error) {
	a, err := floatAmount(amount)
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	return New(curr, a, scale)
}

func floatAmount(f float64) (*big.Int, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return nil, fmt.Errorf("%w: special value", ErrInvalidAmount)
	case f != math.Trunc(f):
		return nil, fmt.Errorf("%w: not an integer", ErrInvalidAmount)
	case math.Abs(f) > maxSafeInteger:
		return nil, fmt.Errorf("%w: unsafe integer, use an arbitrary-precision integer or a string", ErrInvalidAmount)
	}
	return big.NewInt(int64(f)), nil
}

// NewFromDecimal returns a money with the value of the decimal in major units
// of a decimal currency.
// If the scale of the decimal is less than the exponent of the currency,
// the result will be zero-padded to the right, so NewFromDecimal(USD, 10.5)
// is {1050, USD, 2}.
// See also method [Money.Decimal].
//
// NewFromDecimal returns an error if the currency is not decimal.
func NewFromDecimal(curr Currency, amount decimal.Decimal) (Money, error) {
	if !curr.IsDecimal() {
		return Money{}, fmt.Errorf("converting decimal to %v: %w", curr, ErrNonDecimalCurrency)
	}
	s := NewScaledAmountFromDecimal(amount)
	scale := max(s.Scale(), curr.Exponent())
	return newMoneyUnsafe(curr, s.rescaled(scale), scale), nil
}

// NewMoney returns a money in the referenced currency at its default scale.
// See method [Registry.NewMoneyWithScale] for the supported amount types.
func (r *Registry) NewMoney(ref CurrencyRef, amount any) (Money, error) {
	c, err := r.Resolve(ref)
	if err != nil {
		return Money{}, err
	}
	return newMoneyFromAny(c, amount, c.Exponent())
}

// NewMoneyWithScale returns a money in the referenced currency.
// The amount must be one of:
//
//	int, int8, int16, int32, int64
//	uint, uint8, uint16, uint32, uint64
//	*big.Int, big.Int
//	string            - see [Parse]
//	float32, float64  - see [NewFromFloat64]
//	decimal.Decimal   - must be an integer
//	ScaledAmount      - must have scale 0
//
// NewMoneyWithScale returns an error if:
//   - the currency is referenced by a code absent from the registry;
//   - the amount has an unsupported type or is not an exact integer;
//   - the scale is negative.
func (r *Registry) NewMoneyWithScale(ref CurrencyRef, amount any, scale int) (Money, error) {
	c, err := r.Resolve(ref)
	if err != nil {
		return Money{}, err
	}
	return newMoneyFromAny(c, amount, scale)
}

//gocyclo:ignore
func newMoneyFromAny(c Currency, amount any, scale int) (Money, error) {
	var a *big.Int
	var err error
	switch v := amount.(type) {
	case int:
		a = big.NewInt(int64(v))
	case int8:
		a = big.NewInt(int64(v))
	case int16:
		a = big.NewInt(int64(v))
	case int32:
		a = big.NewInt(int64(v))
	case int64:
		a = big.NewInt(v)
	case uint:
		a = new(big.Int).SetUint64(uint64(v))
	case uint8:
		a = new(big.Int).SetUint64(uint64(v))
	case uint16:
		a = new(big.Int).SetUint64(uint64(v))
	case uint32:
		a = new(big.Int).SetUint64(uint64(v))
	case uint64:
		a = new(big.Int).SetUint64(v)
	case *big.Int:
		if v == nil {
			err = fmt.Errorf("%w: nil integer", ErrInvalidAmount)
			break
		}
		a = new(big.Int).Set(v)
	case big.Int:
		a = new(big.Int).Set(&v)
	case string:
		a, err = parseAmount(v)
	case float32:
		a, err = floatAmount(float64(v))
	case float64:
		a, err = floatAmount(v)
	case decimal.Decimal:
		if !v.IsInt() {
			err = fmt.Errorf("%w: not an integer", ErrInvalidAmount)
			break
		}
		a = NewScaledAmountFromDecimal(v.Trunc(0)).amt()
	case ScaledAmount:
		if v.Scale() != 0 {
			err = fmt.Errorf("%w: not an integer", ErrInvalidAmount)
			break
		}
		a = v.Amount()
	default:
		err = fmt.Errorf("%w: type %T is not supported", ErrInvalidAmount, amount)
	}
	if err != nil {
		return Money{}, fmt.Errorf("converting amount: %w", err)
	}
	if scale < 0 {
		return Money{}, fmt.Errorf("%w: %v is negative", ErrInvalidScale, scale)
	}
	return newMoneyUnsafe(c, a, scale), nil
}

// Amount returns a copy of the integer amount.
func (m Money) Amount() *big.Int {
	return new(big.Int).Set(m.amt())
}

// amt returns the amount without copying, the result must not be modified.
func (m Money) amt() *big.Int {
	if m.amount == nil {
		return bigZero
	}
	return m.amount
}

// Curr returns the currency of the money.
func (m Money) Curr() Currency {
	return m.curr
}

// Scale returns the number of radix digits of subdivision.
// See also method [Money.TransformScale].
func (m Money) Scale() int {
	return m.scale
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.amt().Sign()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.Sign() == 0
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.Sign() < 0
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.Sign() > 0
}

// Neg returns a money with the opposite sign.
func (m Money) Neg() Money {
	return newMoneyUnsafe(m.Curr(), new(big.Int).Neg(m.amt()), m.Scale())
}

// Abs returns the absolute value of the money.
func (m Money) Abs() Money {
	return newMoneyUnsafe(m.Curr(), new(big.Int).Abs(m.amt()), m.Scale())
}

// Equal returns true if moneys have the same amount, currency code and scale.
// The scales are not normalized, so USD 1.00 at scale 2 and USD 1.000 at
// scale 3 are not equal.
// Use [Money.SameAmount] or [Money.Cmp] to compare quantities.
func (m Money) Equal(b Money) bool {
	return m.Curr().Equal(b.Curr()) &&
		m.Scale() == b.Scale() &&
		m.amt().Cmp(b.amt()) == 0
}

var bigZero = new(big.Int)

// pow returns a new integer equal to base^exp.
func pow(base *big.Int, exp int) *big.Int {
	return new(big.Int).Exp(base, big.NewInt(int64(exp)), nil)
}
