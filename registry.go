package moneta

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownCurrencyCode = errors.New("unknown currency code")

// Registry maps currency codes to currency descriptors.
// A registry is read-only after construction, which makes it safe for
// concurrent use by multiple goroutines.
// A nil *Registry is valid and empty.
type Registry struct {
	currs map[string]Currency
}

// NewRegistry returns a registry holding the given currencies.
//
// NewRegistry returns an error if two currencies share the same code or
// if any of them is the zero [Currency].
func NewRegistry(currs ...Currency) (*Registry, error) {
	r := &Registry{currs: make(map[string]Currency, len(currs))}
	for _, c := range currs {
		if c.Code() == "" {
			return nil, fmt.Errorf("registering currency: %w: empty code", ErrInvalidCurrency)
		}
		if _, ok := r.currs[c.Code()]; ok {
			return nil, fmt.Errorf("registering currency %v: duplicate code", c)
		}
		r.currs[c.Code()] = c
	}
	return r, nil
}

// MustNewRegistry is like [NewRegistry] but panics if the registry cannot be constructed.
func MustNewRegistry(currs ...Currency) *Registry {
	r, err := NewRegistry(currs...)
	if err != nil {
		panic(fmt.Sprintf("NewRegistry(%v) failed: %v", currs, err))
	}
	return r
}

// DefaultRegistry returns a new registry holding the built-in currencies
// [USD], [EUR], [CHF], [GBP], [JPY] and [MGA].
func DefaultRegistry() *Registry {
	return MustNewRegistry(Builtin()...)
}

// Builtin returns the built-in currencies.
func Builtin() []Currency {
	return []Currency{USD, EUR, CHF, GBP, JPY, MGA}
}

// Lookup returns the currency registered under the exact code.
// The second result reports whether the code is registered.
func (r *Registry) Lookup(code string) (Currency, bool) {
	if r == nil {
		return Currency{}, false
	}
	c, ok := r.currs[code]
	return c, ok
}

// Codes returns the registered codes in ascending order.
func (r *Registry) Codes() []string {
	if r == nil {
		return nil
	}
	codes := make([]string, 0, len(r.currs))
	for code := range r.currs {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Len returns the number of registered currencies.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.currs)
}

// With returns a new registry holding the currencies of r and currs.
// Currencies in currs replace registered currencies with the same code.
func (r *Registry) With(currs ...Currency) (*Registry, error) {
	merged := make([]Currency, 0, r.Len()+len(currs))
	for _, code := range r.Codes() {
		if slices.ContainsFunc(currs, func(c Currency) bool { return c.Code() == code }) {
			continue
		}
		merged = append(merged, r.currs[code])
	}
	merged = append(merged, currs...)
	return NewRegistry(merged...)
}

// CurrencyRef references a currency either by code or by value.
// See constructors [ByCode], [ByValue] and method [Registry.Resolve].
type CurrencyRef interface {
	resolve(r *Registry) (Currency, error)
}

type byCode string

func (ref byCode) resolve(r *Registry) (Currency, error) {
	c, ok := r.Lookup(string(ref))
	if !ok {
		return Currency{}, fmt.Errorf("%w %q", ErrUnknownCurrencyCode, string(ref))
	}
	return c, nil
}

type byValue Currency

func (ref byValue) resolve(*Registry) (Currency, error) {
	return Currency(ref), nil
}

// ByCode returns a reference to the currency registered under the code.
func ByCode(code string) CurrencyRef {
	return byCode(code)
}

// ByValue returns a reference to the given currency descriptor.
// Resolving it never consults a registry.
func ByValue(c Currency) CurrencyRef {
	return byValue(c)
}

// Resolve returns the currency referenced by ref.
//
// Resolve returns [ErrUnknownCurrencyCode] if ref is a code absent from
// the registry.
func (r *Registry) Resolve(ref CurrencyRef) (Currency, error) {
	if ref == nil {
		return Currency{}, errors.New("resolving currency: nil reference")
	}
	return ref.resolve(r)
}
