// Package logger builds the zap loggers used by the patterns command.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewWith returns a logger built from a development zap.Config modified by cfgFn.
func NewWith(cfgFn func(*zap.Config)) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfgFn(&cfg)

	return cfg.Build()
}

// NewCLILogger returns a console logger at level with capitalised, coloured
// levels, writing to stderr so demo output on stdout stays clean.
func NewCLILogger(level zapcore.Level) (*zap.Logger, error) {
	return NewWith(func(cfg *zap.Config) {
		cfg.Level.SetLevel(level)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		cfg.DisableStacktrace = true
	})
}

// ParseLevel maps a textual level ("debug", "INFO", ...) to a zapcore.Level.
func ParseLevel(text string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(text)); err != nil {
		return lvl, fmt.Errorf("ParseLevel(%q): %w", text, err)
	}

	return lvl, nil
}
