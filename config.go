package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BEANFIXTURE"

// Config holds the generator settings after flags, environment and the
// optional .beanfixture.yaml file have been merged.
type Config struct {
	Output          string `mapstructure:"output"`
	Package         string `mapstructure:"package"`
	SensitiveFields string `mapstructure:"sensitive-field-name-matches"`
	Prefix          bool   `mapstructure:"prefix"`
	Verbose         bool   `mapstructure:"verbose"`
}

// SensitiveNameMatches returns the lower-cased, non-empty substrings that
// mark a field as sensitive.
func (c *Config) SensitiveNameMatches() []string {
	matches := make([]string, 0)
	for _, m := range strings.Split(c.SensitiveFields, ",") {
		if m = strings.TrimSpace(m); m != "" {
			matches = append(matches, strings.ToLower(m))
		}
	}
	return matches
}

// bindConfig wires flags as the highest precedence source in v, backed by
// BEANFIXTURE_* environment variables and .beanfixture.yaml.
func bindConfig(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetConfigName(".beanfixture")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindPFlags(flags)
}

// LoadConfig reads the merged settings out of v and validates them.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Output == "" {
		return nil, errors.New("output is required")
	}
	return &cfg, nil
}
