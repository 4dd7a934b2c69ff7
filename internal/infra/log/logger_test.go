package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umithief/motovibe6/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONToStdout(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.Log{}, slog.LevelInfo, &buf)

	logger.Debug("hidden")
	logger.Info("order placed", slog.String("code", "MV-2024-0042"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "order placed", record["msg"])
	assert.Equal(t, "MV-2024-0042", record["code"])
}

func TestNewLogger_RotatingFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "motovibe.log")
	logger := newLogger(config.Log{Pretty: true, File: path, MaxSizeMB: 1}, slog.LevelInfo, &buf)

	logger.Info("visit recorded")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visit recorded")
	assert.Contains(t, buf.String(), "visit recorded")
}
