package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/eolymp/go-indentex"
)

type Config struct {
	FlattenOutput   bool   `mapstructure:"flatten_output"`     // strip indentation from generated LaTeX
	DoNotEditNotice bool   `mapstructure:"do_not_edit_notice"` // prepend autogenerated file notice
	Pattern         string `mapstructure:"pattern"`            // doublestar pattern used for directories
	Workers         int    `mapstructure:"workers"`            // files transpiled in parallel, 0 means number of CPUs
	Verbose         bool   `mapstructure:"verbose"`
}

// Options returns transpiler options
func (c *Config) Options() indentex.Options {
	return indentex.Options{
		FlattenOutput:          c.FlattenOutput,
		PrependDoNotEditNotice: c.DoNotEditNotice,
	}
}

// Load reads configuration from file, INDENTEX_* environment variables and whatever flags are bound to v.
// When file is empty .indentex.yaml is looked up in the working directory and in the user config directory, a missing
// file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".indentex")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if dir, err := GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("INDENTEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("flatten_output", false)
	v.SetDefault("do_not_edit_notice", true)
	v.SetDefault("pattern", indentex.DefaultPattern)
	v.SetDefault("workers", 0)
	v.SetDefault("verbose", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}

	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if cfg.Pattern == "" {
		cfg.Pattern = indentex.DefaultPattern
	}

	return &cfg, nil
}

// GetConfigDir returns directory of the user-wide configuration file
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "indentex"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "indentex"), nil
}
