// Package cli implements the moneta command line tool.
package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/govalues/moneta"
	"github.com/govalues/moneta/internal/config"
)

// Version is the version reported by "moneta --version".
var Version = "0.1.0-dev"

// app is the state shared by the commands of one invocation.
type app struct {
	configFile     string
	currenciesFile string
	logLevel       string

	cfg *config.Config
	reg *moneta.Registry
	log zerolog.Logger
}

// NewRootCmd returns the moneta command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{log: zerolog.New(os.Stderr).With().Timestamp().Logger()}

	rootCmd := &cobra.Command{
		Use:   "moneta",
		Short: "moneta - exact money arithmetic in arbitrary currencies",
		Long: `moneta performs exact arithmetic, rescaling, allocation and unit
decomposition of money amounts in decimal and non-decimal currencies.

Money arguments are either the wire form
    {"amount":"1045n","currency":"USD","scale":2}
or the short form CODE:AMOUNT[:SCALE], where AMOUNT is an integer number
of the smallest subdivision at SCALE (the currency exponent by default),
or a decimal number of major units for decimal currencies:
    USD:1045  USD:1045:3  USD:10.45  LSD:267:1`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "conf", "", "configuration file path")
	flags.StringVar(&a.currenciesFile, "currencies", "", "currency catalogue file path (overrides currencies.file)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides log.level)")

	rootCmd.AddCommand(
		newAddCmd(a),
		newSubCmd(a),
		newMulCmd(a),
		newAllocateCmd(a),
		newRescaleCmd(a),
		newTrimCmd(a),
		newUnitsCmd(a),
		newFormatCmd(a),
		newCurrenciesCmd(a),
	)

	return rootCmd, a
}

// init loads the configuration, the logger and the currency registry.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if a.currenciesFile != "" {
		cfg.Currencies.File = a.currenciesFile
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg

	if a.log, err = buildLogger(cmd.ErrOrStderr(), cfg.Log.Encoder, cfg.Log.Level); err != nil {
		return err
	}

	if a.reg, err = config.LoadRegistry(cfg.Currencies.File); err != nil {
		return errors.Wrap(err, "failed to load currencies")
	}
	a.log.Debug().
		Str("config", a.configFile).
		Str("currencies", cfg.Currencies.File).
		Int("registered", a.reg.Len()).
		Msg("initialized")

	return nil
}

// Execute runs the moneta command with the process arguments and returns
// the exit code.
func Execute() int {
	cmd, a := newRootCmd()
	if err := cmd.Execute(); err != nil {
		a.log.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}
