package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TUTORING_PRIMARY__ENV", "development")
	t.Setenv("TUTORING_SERVER__PORT", "8080")
	t.Setenv("TUTORING_SERVER__READ_TIMEOUT", "30")
	t.Setenv("TUTORING_SERVER__WRITE_TIMEOUT", "30")
	t.Setenv("TUTORING_SERVER__IDLE_TIMEOUT", "60")
	t.Setenv("TUTORING_SERVER__CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("TUTORING_REDIS__ADDRESS", "localhost:6379")
	t.Setenv("TUTORING_AUTH__SECRET_KEY", "sk_test_123")
	t.Setenv("TUTORING_INTEGRATION__RESEND_API_KEY", "re_test_123")
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "short", cfg.Store.IDScheme)
	assert.False(t, cfg.Store.StrictReferences)
	assert.NotEmpty(t, cfg.Integration.EmailFrom)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "tutoring-api", cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadConfigStoreOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TUTORING_STORE__ID_SCHEME", "uuid")
	t.Setenv("TUTORING_STORE__STRICT_REFERENCES", "true")
	t.Setenv("TUTORING_SERVER__RATE_LIMIT", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "uuid", cfg.Store.IDScheme)
	assert.True(t, cfg.Store.StrictReferences)
	assert.Equal(t, 5.0, cfg.Server.RateLimit)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	t.Run("missing required", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TUTORING_REDIS__ADDRESS", "")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown id scheme", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TUTORING_STORE__ID_SCHEME", "sequential")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("TUTORING_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "server.port", envKey("TUTORING_SERVER.PORT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("TUTORING_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowRequestThreshold = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestObservabilityHelpers(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = ""

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.True(t, cfg.HasCheck("redis"))
	assert.False(t, cfg.HasCheck("database"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HasCheck("redis"))
}
