package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/tutoring-api/internal/config"
)

func TestLoggerServiceDisabledWithoutLicense(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	service, err := NewLoggerService(cfg)
	require.NoError(t, err)
	assert.Nil(t, service.GetApplication())

	// Shutdown on a disabled service is a no-op.
	service.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLogger(cfg)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	cfg.Logging.Level = ""
	cfg.Environment = "development"
	logger = NewLogger(cfg)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestWithTraceContextWithoutTransaction(t *testing.T) {
	logger := zerolog.Nop()
	assert.Equal(t, logger, WithTraceContext(logger, nil))
}
