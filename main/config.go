package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings of one balda run. Values come from, in order of
// precedence, flags, BALDA_* environment variables, the config file and defaults.
type Config struct {
	Format    OutputFormat `mapstructure:"format"`
	Color     bool         `mapstructure:"color"`
	Limit     int          `mapstructure:"limit"`
	LogLevel  string       `mapstructure:"log-level"`
	LogFormat string       `mapstructure:"log-format"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Format:    FormatText,
		Color:     false,
		Limit:     0,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// addConfigFlags registers the flags that map onto Config keys.
func addConfigFlags(flags *pflag.FlagSet) {
	def := DefaultConfig()
	flags.String("format", string(def.Format), "Output format: text, json or yaml.")
	flags.Bool("color", def.Color, "Highlight found words on the grid (text format only).")
	flags.Int("limit", def.Limit, "Print at most this many words, longest first. 0 prints all.")
	flags.String("log-level", def.LogLevel, "Logging level: debug, info, warn or error.")
	flags.String("log-format", def.LogFormat, "Log output format: text or json.")
}

// LoadConfig merges defaults, the config file, the environment and flags.
// An empty file looks for balda.{toml,yaml,json} in the working directory
// and is not an error when none exists.
func LoadConfig(flags *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("format", string(def.Format))
	v.SetDefault("color", def.Color)
	v.SetDefault("limit", def.Limit)
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("log-format", def.LogFormat)

	v.SetEnvPrefix("BALDA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("balda")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Format = OutputFormat(strings.ToLower(string(cfg.Format)))
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return &ConfigError{Field: "format", Message: "must be 'text', 'json' or 'yaml'"}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log-level", Message: "must be 'debug', 'info', 'warn' or 'error'"}
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return &ConfigError{Field: "log-format", Message: "must be 'text' or 'json'"}
	}

	if c.Limit < 0 {
		return &ConfigError{Field: "limit", Message: "must not be negative"}
	}

	return nil
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
