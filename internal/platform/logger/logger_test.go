package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/gradebook/internal/config"
	"github.com/phrazzld/gradebook/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", want: slog.LevelDebug},
		{name: "INFO", want: slog.LevelInfo},
		{name: " warn ", want: slog.LevelWarn},
		{name: "warning", want: slog.LevelWarn},
		{name: "error", want: slog.LevelError},
		{name: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tc := range tests {
		got, err := logger.ParseLevel(tc.name)
		assert.Equal(t, tc.want, got, tc.name)
		assert.Equal(t, tc.wantErr, err != nil, tc.name)
	}
}

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("json filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := logger.SetupWithWriter(config.LogConfig{Level: "warn", Format: "json"}, &buf)
		require.NoError(t, err)

		l.Info("hidden")
		l.Warn("shown", "student_count", 3)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "WARN", entry["level"])
		assert.EqualValues(t, 3, entry["student_count"])
	})

	t.Run("becomes the default logger", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := logger.SetupWithWriter(config.LogConfig{Level: "debug", Format: "text"}, &buf)
		require.NoError(t, err)

		slog.Debug("via default", "key", "value")
		assert.Contains(t, buf.String(), "msg=\"via default\"")
		assert.Contains(t, buf.String(), "key=value")
	})

	t.Run("invalid settings", func(t *testing.T) {
		_, err := logger.SetupWithWriter(config.LogConfig{Level: "loud", Format: "json"}, &bytes.Buffer{})
		assert.Error(t, err)

		_, err = logger.SetupWithWriter(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestTestLogBuffer(t *testing.T) {
	t.Parallel()

	l, buf := logger.NewTestLogger(t)
	l.Debug("first", "n", 1)
	l.Info("second", "n", 2)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entry := logger.FindEntry(t, buf, "second")
	require.NotNil(t, entry)
	assert.EqualValues(t, 2, entry["n"])
	assert.Nil(t, logger.FindEntry(t, buf, "missing"))
}
