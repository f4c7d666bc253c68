package cli

import (
	"strings"

	"github.com/govalues/decimal"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/govalues/moneta"
)

// parseMoney converts a command line argument to a money.
// See the help of the root command for the accepted forms.
func parseMoney(reg *moneta.Registry, arg string) (moneta.Money, error) {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "{") {
		m, err := reg.DecodeJSON([]byte(arg))
		if err != nil {
			return moneta.Money{}, errors.Wrapf(err, "invalid money %s", arg)
		}
		return m, nil
	}

	parts := strings.Split(arg, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return moneta.Money{}, errors.Errorf("invalid money %q, want CODE:AMOUNT[:SCALE]", arg)
	}
	code, amount := strings.ToUpper(parts[0]), parts[1]

	if strings.Contains(amount, ".") {
		if len(parts) == 3 {
			return moneta.Money{}, errors.Errorf("invalid money %q, a decimal amount takes no scale", arg)
		}
		return parseDecimalMoney(reg, code, amount)
	}

	var (
		m   moneta.Money
		err error
	)
	if len(parts) == 3 {
		scale, serr := cast.ToIntE(parts[2])
		if serr != nil {
			return moneta.Money{}, errors.Wrapf(serr, "invalid scale in %q", arg)
		}
		m, err = reg.NewMoneyWithScale(moneta.ByCode(code), amount, scale)
	} else {
		m, err = reg.NewMoney(moneta.ByCode(code), amount)
	}
	if err != nil {
		return moneta.Money{}, errors.Wrapf(err, "invalid money %q", arg)
	}
	return m, nil
}

func parseDecimalMoney(reg *moneta.Registry, code, amount string) (moneta.Money, error) {
	c, err := reg.Resolve(moneta.ByCode(code))
	if err != nil {
		return moneta.Money{}, errors.Wrapf(err, "invalid money %s:%s", code, amount)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return moneta.Money{}, errors.Wrapf(err, "invalid amount %q", amount)
	}
	m, err := moneta.NewFromDecimal(c, d)
	if err != nil {
		return moneta.Money{}, errors.Wrapf(err, "invalid money %s:%s", code, amount)
	}
	return m, nil
}

func parseMonies(reg *moneta.Registry, args []string) ([]moneta.Money, error) {
	ms := make([]moneta.Money, len(args))
	for i, arg := range args {
		m, err := parseMoney(reg, arg)
		if err != nil {
			return nil, err
		}
		ms[i] = m
	}
	return ms, nil
}

// parseRatios converts a comma-separated list such as "50,30.5,19.5".
func parseRatios(list []string) ([]moneta.ScaledAmount, error) {
	if len(list) == 0 {
		return nil, errors.New("no ratios")
	}
	ratios := make([]moneta.ScaledAmount, len(list))
	for i, s := range list {
		r, err := moneta.ParseScaledAmount(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ratio #%d %q", i+1, s)
		}
		ratios[i] = r
	}
	return ratios, nil
}
