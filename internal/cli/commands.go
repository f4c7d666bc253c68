package cli

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/moneta"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <money> <money>...",
		Short: "Add money amounts of the same currency",
		Example: `    moneta add USD:1045 USD:1:3
    moneta add '{"amount":"5000n","currency":"USD","scale":2}' USD:0.05`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMonies(a.reg, args)
			if err != nil {
				return err
			}
			sum := ms[0]
			for _, m := range ms[1:] {
				if sum, err = sum.Add(m); err != nil {
					return err
				}
			}
			a.log.Debug().Int("terms", len(ms)).Stringer("sum", sum).Msg("add")
			return write(cmd, sum)
		},
	}
}

func newSubCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "sub <money> <money>",
		Short:   "Subtract a money amount from another of the same currency",
		Example: `    moneta sub USD:1045 USD:45`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMonies(a.reg, args)
			if err != nil {
				return err
			}
			diff, err := ms[0].Sub(ms[1])
			if err != nil {
				return err
			}
			a.log.Debug().Stringer("difference", diff).Msg("sub")
			return write(cmd, diff)
		},
	}
}

func newMulCmd(a *app) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:     "mul <money> --by <number>",
		Short:   "Multiply a money amount by an exact decimal number",
		Example: `    moneta mul USD:1045 --by 2.5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMoney(a.reg, args[0])
			if err != nil {
				return err
			}
			factor, err := moneta.ParseScaledAmount(by)
			if err != nil {
				return errors.Wrapf(err, "invalid factor %q", by)
			}
			product := m.Mul(factor)
			a.log.Debug().Stringer("factor", factor).Stringer("product", product).Msg("mul")
			return write(cmd, product)
		},
	}
	cmd.Flags().StringVar(&by, "by", "", "multiplier, e.g. 2 or -0.125")
	_ = cmd.MarkFlagRequired("by")
	return cmd
}

func newAllocateCmd(a *app) *cobra.Command {
	var (
		ratios []string
		parts  int
	)
	cmd := &cobra.Command{
		Use:   "allocate <money> (--ratios <r,...> | --parts <n>)",
		Short: "Allocate a money amount by ratios without losing a unit",
		Example: `    moneta allocate USD:10000 --ratios 50,30,20
    moneta allocate USD:10000 --parts 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMoney(a.reg, args[0])
			if err != nil {
				return err
			}
			var shares []moneta.Money
			if cmd.Flags().Changed("parts") {
				shares, err = m.Split(parts)
			} else {
				var rs []moneta.ScaledAmount
				if rs, err = parseRatios(ratios); err != nil {
					return err
				}
				shares, err = m.Allocate(rs...)
			}
			if err != nil {
				return err
			}
			a.log.Debug().Stringer("amount", m).Int("shares", len(shares)).Msg("allocate")
			return writeMonies(cmd, shares)
		},
	}
	cmd.Flags().StringSliceVar(&ratios, "ratios", nil, "comma-separated non-negative ratios, e.g. 50,30.5,19.5")
	cmd.Flags().IntVar(&parts, "parts", 0, "number of equal parts")
	cmd.MarkFlagsMutuallyExclusive("ratios", "parts")
	cmd.MarkFlagsOneRequired("ratios", "parts")
	return cmd
}

func newRescaleCmd(a *app) *cobra.Command {
	var (
		scale    int
		rounding string
	)
	cmd := &cobra.Command{
		Use:   "rescale <money> --scale <n> [--rounding <mode>]",
		Short: "Transform a money amount to another scale",
		Long: `Transform a money amount to another scale. Downscaling rounds with one of
the modes down, up, halfUp, halfDown, halfEven, halfOdd, halfTowardsZero
and halfAwayFromZero.`,
		Example: `    moneta rescale USD:1045 --scale 1 --rounding halfEven`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMoney(a.reg, args[0])
			if err != nil {
				return err
			}
			mode, err := moneta.ParseRounding(rounding)
			if err != nil {
				return err
			}
			res, err := m.TransformScale(scale, mode)
			if err != nil {
				return err
			}
			a.log.Debug().Stringer("rounding", mode).Stringer("result", res).Msg("rescale")
			return write(cmd, res)
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 0, "target scale")
	cmd.Flags().StringVar(&rounding, "rounding", moneta.Down.String(), "rounding mode")
	_ = cmd.MarkFlagRequired("scale")
	return cmd
}

func newTrimCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "trim <money>",
		Short:   "Remove trailing zero subdivisions down to the currency exponent",
		Example: `    moneta trim USD:104500:4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMoney(a.reg, args[0])
			if err != nil {
				return err
			}
			res := m.TrimScale()
			a.log.Debug().Int("from", m.Scale()).Int("to", res.Scale()).Msg("trim")
			return write(cmd, res)
		},
	}
}

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "units <money>",
		Short:   "Decompose a money amount into whole units and subdivisions",
		Example: `    moneta --currencies lsd.yaml units LSD:267:1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMoney(a.reg, args[0])
			if err != nil {
				return err
			}
			out := moneta.UnitsFunc(m, func(units []*big.Int, c moneta.Currency) unitsOutput {
				o := unitsOutput{Currency: c.Code(), Scale: m.Scale(), Units: make([]string, len(units))}
				for i, u := range units {
					o.Units[i] = u.String()
				}
				return o
			})
			a.log.Debug().Strs("units", out.Units).Msg("units")
			return write(cmd, out)
		},
	}
}

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "format <money>",
		Short:   "Render a money amount for display",
		Example: `    moneta format USD:1045`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMoney(a.reg, args[0])
			if err != nil {
				return err
			}
			out := formatOutput{Display: m.String()}
			if m.Curr().IsDecimal() {
				if out.Decimal, err = m.ToDecimal(); err != nil {
					return err
				}
			}
			return write(cmd, out)
		},
	}
}

func newCurrenciesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the registered currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			codes := a.reg.Codes()
			out := make([]currencyOutput, len(codes))
			for i, code := range codes {
				c, _ := a.reg.Lookup(code)
				out[i] = newCurrencyOutput(c)
			}
			return write(cmd, out)
		},
	}
}
