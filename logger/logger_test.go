package logger_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/floodflow/logger"
)

func TestNewFrom_Defaults(t *testing.T) {
	v := viper.New()
	log, err := logger.NewFrom(v)
	require.NoError(t, err)
	require.NotNil(t, log)

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.Equal(t, time.RFC3339Nano, v.GetString("LOG_TIME_FORMAT"))
}

func TestNewFrom_DebugLevel(t *testing.T) {
	v := viper.New()
	v.Set("LOG_LEVEL", logger.DEBUG_LEVEL)
	log, err := logger.NewFrom(v)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewFrom_EnvIgnoresPrefix(t *testing.T) {
	t.Setenv("LOG_LEVEL", "-1")
	t.Setenv("LOG_TIME_FORMAT", time.Kitchen)

	v := viper.New()
	v.SetEnvPrefix("FLOODFLOW")
	v.AutomaticEnv()
	log, err := logger.NewFrom(v)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.Equal(t, time.Kitchen, v.GetString("LOG_TIME_FORMAT"))
}

func TestNewFrom_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("LOG_LEVEL", 7)
	_, err := logger.NewFrom(v)
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)

	v = viper.New()
	v.Set("LOG_TIME_FORMAT", "")
	_, err = logger.NewFrom(v)
	assert.ErrorIs(t, err, logger.ErrEmptyTimeFormat)
}

func TestNop(t *testing.T) {
	assert.False(t, logger.Nop().Core().Enabled(zapcore.ErrorLevel))
}
