package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fastbite/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"JWT_SECRET", "JWT_TTL", "HUB_BUFFER_LIMIT", "STREAM_KEEPALIVE", "LOG_LEVEL", "LOG_FORMAT",
	"KAFKA_HOST", "KAFKA_ORDER_CHANGED_TOPIC", "SEED_DEMO_DATA", "JOBS_REPORT_SCHEDULE", "SHUTDOWN_TIMEOUT",
}

// clearEnv blanks every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "fastbite")
	t.Setenv("DB_NAME", "fastbite")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 1024, cfg.HubBufferLimit)
	assert.Equal(t, 15*time.Second, cfg.StreamKeepAlive)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "*/30 * * * * *", cfg.JobsReportSchedule)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.SeedDemoData)
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, "host=localhost port=5432 user=fastbite password= dbname=fastbite sslmode=disable", cfg.DSN())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("HUB_BUFFER_LIMIT", "0")
	t.Setenv("STREAM_KEEPALIVE", "5s")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("KAFKA_HOST", "kafka:9092")
	t.Setenv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed")

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.HubBufferLimit)
	assert.Equal(t, 5*time.Second, cfg.StreamKeepAlive)
	assert.True(t, cfg.SeedDemoData)
	assert.True(t, cfg.KafkaEnabled())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "localhost")

	_, err := cmd.LoadConfig("")

	require.ErrorIs(t, err, cmd.ErrMissingConfig)
	assert.ErrorContains(t, err, "DB_USER")
	assert.ErrorContains(t, err, "DB_NAME")
	assert.ErrorContains(t, err, "JWT_SECRET")
	assert.NotContains(t, err.Error(), "DB_HOST")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"JWT_TTL", "a day"},
		{"HUB_BUFFER_LIMIT", "lots"},
		{"HUB_BUFFER_LIMIT", "-1"},
		{"SEED_DEMO_DATA", "maybe"},
		{"SHUTDOWN_TIMEOUT", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := cmd.LoadConfig("")
			require.ErrorContains(t, err, tt.key)
		})
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	for _, key := range configKeys {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("JWT_SECRET", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"DB_HOST=db\nDB_USER=u\nDB_NAME=n\nJWT_SECRET=from-file\nHTTP_PORT=9090\n"), 0o600))

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "from-env", cfg.JWTSecret)
}

func TestLoadConfig_MissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
}
