package cli

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/moneta"
)

type unitsOutput struct {
	Currency string   `json:"currency"`
	Scale    int      `json:"scale"`
	Units    []string `json:"units"`
}

type formatOutput struct {
	Display string `json:"display"`
	Decimal string `json:"decimal,omitempty"`
}

type currencyOutput struct {
	Code     string  `json:"code"`
	Radix    []int64 `json:"radix"`
	Exponent int     `json:"exponent"`
	Decimal  bool    `json:"decimal"`
}

func newCurrencyOutput(c moneta.Currency) currencyOutput {
	return currencyOutput{
		Code:     c.Code(),
		Radix:    c.Radix(),
		Exponent: c.Exponent(),
		Decimal:  c.IsDecimal(),
	}
}

// write encodes v as a JSON line on the standard output of cmd.
func write(cmd *cobra.Command, v any) error {
	if err := json.NewEncoder(cmd.OutOrStdout()).Encode(v); err != nil {
		return errors.Wrap(err, "failed to write result")
	}
	return nil
}

// writeMonies writes a single money as an object and several as an array.
func writeMonies(cmd *cobra.Command, ms []moneta.Money) error {
	if len(ms) == 1 {
		return write(cmd, ms[0])
	}
	return write(cmd, ms)
}
