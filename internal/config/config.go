package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding settings,
// e.g. MONETA_LOG_LEVEL overrides log.level.
const EnvPrefix = "MONETA"

// Config holds the settings of the moneta tool.
type Config struct {
	Log        LogConfig      `mapstructure:"log"`
	Currencies CurrencyConfig `mapstructure:"currencies"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level   string `mapstructure:"level"`   // zerolog level name
	Encoder string `mapstructure:"encoder"` // console or json
}

// CurrencyConfig points to an optional currency catalogue, see LoadRegistry.
type CurrencyConfig struct {
	File string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoder", "console")
	v.SetDefault("currencies.file", "")
}

// Load loads the settings from defaults, the optional file at path
// (YAML, TOML or JSON, by extension) and MONETA_ environment variables,
// in increasing priority.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "config file %s is not accessible", path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

// Validate checks the settings that can be checked without building anything.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Encoder) {
	case "console", "json":
	default:
		return errors.Errorf("unsupported log encoder %q (supported: console, json)", c.Log.Encoder)
	}
	if c.Log.Level == "" {
		return errors.New("log level cannot be empty")
	}
	return nil
}
