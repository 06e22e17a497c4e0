// Package logger builds the zap logger used by the engine and the CLI.
// Level and time format come from viper (LOG_LEVEL, LOG_TIME_FORMAT), so they
// can be set from the environment or from a config file.
package logger

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels accepted in LOG_LEVEL.
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

var (
	// ErrInvalidLevel indicates LOG_LEVEL is outside [DEBUG_LEVEL, ERROR_LEVEL].
	ErrInvalidLevel = errors.New("logger: invalid log level")

	// ErrEmptyTimeFormat indicates LOG_TIME_FORMAT is empty.
	ErrEmptyTimeFormat = errors.New("logger: empty time format")
)

// Configuration is the validated logger setup.
type Configuration struct {
	Level      int
	TimeFormat string
}

// Validate checks Level and TimeFormat.
func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, c.Level)
	}
	if c.TimeFormat == "" {
		return ErrEmptyTimeFormat
	}

	return nil
}

// New reads LOG_LEVEL and LOG_TIME_FORMAT from the global viper instance and
// returns a JSON logger writing to stderr.
func New() (*zap.Logger, error) {
	return NewFrom(viper.GetViper())
}

// NewFrom is New with an explicit viper instance. LOG_LEVEL and
// LOG_TIME_FORMAT are read under their exact names even when v has an
// env prefix.
func NewFrom(v *viper.Viper) (*zap.Logger, error) {
	for _, key := range []string{"LOG_LEVEL", "LOG_TIME_FORMAT"} {
		if err := v.BindEnv(key, key); err != nil {
			return nil, err
		}
	}
	v.SetDefault("LOG_LEVEL", INFO_LEVEL)
	v.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)

	cfg := Configuration{
		Level:      v.GetInt("LOG_LEVEL"),
		TimeFormat: v.GetString("LOG_TIME_FORMAT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return Build(cfg)
}

// Build constructs a logger from an already validated Configuration.
func Build(cfg Configuration) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	zc.DisableStacktrace = cfg.Level > DEBUG_LEVEL

	return zc.Build()
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
