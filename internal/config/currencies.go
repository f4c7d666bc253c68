package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/govalues/moneta"
)

// LoadRegistry reads a currency catalogue and returns a registry holding it.
// The catalogue lists currencies under the key "currencies", for example in YAML:
//
//	currencies:
//	  - code: BTC
//	    radix: 10
//	    exponent: 8
//	  - code: LSD
//	    radix: [20, 12]
//	    exponent: 1
//
// A scalar radix yields a single-radix currency and a list a multi-radix one.
// The built-in currencies are kept, and replaced by catalogue entries with the
// same code, unless the catalogue sets replace_builtin to true.
// An empty path returns the default registry.
func LoadRegistry(path string) (*moneta.Registry, error) {
	if path == "" {
		return moneta.DefaultRegistry(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read currencies file %s", path)
	}

	entries, err := cast.ToSliceE(v.Get("currencies"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid currencies in %s", path)
	}
	currs := make([]moneta.Currency, 0, len(entries))
	for i, e := range entries {
		c, err := parseCurrency(e)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid currency #%d in %s", i+1, path)
		}
		currs = append(currs, c)
	}

	var reg *moneta.Registry
	if v.GetBool("replace_builtin") {
		reg, err = moneta.NewRegistry(currs...)
	} else {
		reg, err = moneta.DefaultRegistry().With(currs...)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build registry from %s", path)
	}
	return reg, nil
}

func parseCurrency(entry any) (moneta.Currency, error) {
	fields, err := cast.ToStringMapE(entry)
	if err != nil {
		return moneta.Currency{}, errors.Wrap(err, "entry is not a map")
	}
	code, err := cast.ToStringE(fields["code"])
	if err != nil {
		return moneta.Currency{}, errors.Wrap(err, "invalid code")
	}
	exponent, err := cast.ToIntE(fields["exponent"])
	if err != nil {
		return moneta.Currency{}, errors.Wrapf(err, "invalid exponent of %s", code)
	}

	switch radix := fields["radix"].(type) {
	case nil:
		return moneta.Currency{}, errors.Errorf("missing radix of %s", code)
	case []any:
		radices := make([]int64, len(radix))
		for i, r := range radix {
			if radices[i], err = cast.ToInt64E(r); err != nil {
				return moneta.Currency{}, errors.Wrapf(err, "invalid radix of %s", code)
			}
		}
		return moneta.NewMultiRadixCurrency(code, radices, exponent)
	default:
		r, err := cast.ToInt64E(radix)
		if err != nil {
			return moneta.Currency{}, errors.Wrapf(err, "invalid radix of %s", code)
		}
		return moneta.NewCurrency(code, r, exponent)
	}
}
