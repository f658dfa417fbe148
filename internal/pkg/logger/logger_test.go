package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"fastbite/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter(&buf, "", "")
	require.NoError(t, err)

	log.Info("order placed", "order_id", "42")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "order placed", record["msg"])
	assert.Equal(t, "42", record["order_id"])
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter(&buf, "warn", "text")
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewWithWriter_RejectsUnknownSettings(t *testing.T) {
	_, err := logger.NewWithWriter(&bytes.Buffer{}, "loud", "json")
	require.Error(t, err)

	_, err = logger.NewWithWriter(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
