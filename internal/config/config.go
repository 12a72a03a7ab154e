// Package config loads the patterns command configuration from an optional
// YAML file and PATTERNS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PATTERNS"

// Keys understood in the file and the environment.
const (
	KeyLogLevel = "log_level"
	KeyDemos    = "demos"
	KeyBanner   = "banner"
)

// Defaults.
const (
	DefaultLogLevel = "info"
	DefaultBanner   = "====="
)

// ErrEmptyBanner is returned by Load when the resolved banner is empty.
var ErrEmptyBanner = errors.New("config: banner is empty")

// Config is the resolved command configuration.
type Config struct {
	// LogLevel is a zap level name.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Demos lists demo slugs to run; empty means all, in catalogue order.
	Demos []string `mapstructure:"demos" yaml:"demos"`
	// Banner frames each demo title.
	Banner string `mapstructure:"banner" yaml:"banner"`
}

// New returns a viper instance with defaults and environment bindings set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyDemos, []string{})
	v.SetDefault(KeyBanner, DefaultBanner)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads filePath into v when it is set and exists, then unmarshals the
// merged settings. Environment variables override the file; values bound to
// flags on v override both.
func Load(v *viper.Viper, filePath string) (*Config, error) {
	if filePath != "" {
		if _, err := os.Stat(filePath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s: %w", filePath, err)
			}
			return nil, err
		}
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", filePath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// PATTERNS_DEMOS arrives as one space or comma separated string.
	cfg.Demos = splitList(cfg.Demos)
	if strings.TrimSpace(cfg.Banner) == "" {
		return nil, fmt.Errorf("%s=%q: %w", KeyBanner, cfg.Banner, ErrEmptyBanner)
	}

	return cfg, nil
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, f := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, f)
		}
	}

	return out
}
