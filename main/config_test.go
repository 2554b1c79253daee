package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

func newTestFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addConfigFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(newTestFlags(t), "")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "balda.toml", "format = \"json\"\nlimit = 3\nlog-level = \"debug\"\ncolor = true\n")

	t.Setenv("BALDA_LIMIT", "7")
	t.Setenv("BALDA_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(newTestFlags(t, "--log-level", "error"), file)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := &Config{
		Format:    FormatJSON, // file
		Color:     true,       // file
		Limit:     7,          // env over file
		LogLevel:  "error",    // flag over env
		LogFormat: "text",     // default
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(nil, "/nonexistent/balda.toml"); err == nil {
		t.Fatal("LoadConfig() succeeded for a missing explicit config file")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "format", mutate: func(c *Config) { c.Format = "xml" }, wantField: "format"},
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantField: "log-level"},
		{name: "log format", mutate: func(c *Config) { c.LogFormat = "logfmt" }, wantField: "log-format"},
		{name: "limit", mutate: func(c *Config) { c.Limit = -1 }, wantField: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tt.wantField {
				t.Fatalf("Validate() error = %v, want error in field %q", err, tt.wantField)
			}
		})
	}
}
