// Package config loads blade CLI settings from an optional YAML file and
// BLADE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete CLI configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Sum     SumConfig     `mapstructure:"sum"`
	Dice    DiceConfig    `mapstructure:"dice"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
	Output string `mapstructure:"output"` // stderr, stdout or a file path
}

// SumConfig configures `blade stats sum`.
type SumConfig struct {
	Precise bool `mapstructure:"precise"`
}

// DiceConfig configures `blade dice`.
type DiceConfig struct {
	Size int    `mapstructure:"size"`
	Fill string `mapstructure:"fill"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn", Format: "text", Output: "stderr"},
		Sum:     SumConfig{Precise: false},
		Dice:    DiceConfig{Size: 2, Fill: ""},
	}
}

// Load reads configuration from path (skipped when empty) and the
// environment. Environment variables use the BLADE_ prefix with dots replaced
// by underscores, e.g. BLADE_LOGGING_LEVEL or BLADE_SUM_PRECISE.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix("BLADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper creates a Config from an existing Viper instance. The result
// is not validated; callers apply overrides first and then call Validate.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during
// Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("sum.precise", d.Sum.Precise)
	v.SetDefault("dice.size", d.Dice.Size)
	v.SetDefault("dice.fill", d.Dice.Fill)
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	if !slices.Contains([]string{"text", "json"}, c.Logging.Format) {
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Dice.Size < 1 {
		return fmt.Errorf("%w: dice.size must be at least 1, got %d", ErrInvalidConfig, c.Dice.Size)
	}
	return nil
}

// Overrides holds CLI flag values; zero values leave the config unchanged.
type Overrides struct {
	LogLevel  string
	LogFormat string
	Precise   bool
}

// ApplyOverrides applies non-zero CLI flag values on top of c.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.Precise {
		c.Sum.Precise = true
	}
}
