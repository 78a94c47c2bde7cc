package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"plantcare/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "Warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "warning", want: slog.LevelWarn},
		{input: "", want: slog.LevelInfo},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	logger, err := New(Params{Config: cfg})
	require.Error(t, err)
	assert.Nil(t, logger)
}

func TestNew_BuildsLoggerAtLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "warn"
	cfg.Env.Log.Pretty = true

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestNewLogger_AddsServiceIdentity(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "staging"
	cfg.Env.ServiceName = "plantcare"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	WithComponent(logger, "scan_scheduler").Info("Scheduled scan finished", slog.Int("processed", 2))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "plantcare", record["service"])
	assert.Equal(t, "staging", record["env"])
	assert.Equal(t, "scan_scheduler", record[ComponentKey])
	assert.Equal(t, "Scheduled scan finished", record["msg"])
	assert.InDelta(t, 2, record["processed"], 0)
	assert.NotContains(t, record, slog.SourceKey)
}

func TestNewLogger_PrettyTextOutput(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "plantcare"
	cfg.Env.Log.Pretty = true
	cfg.Env.Log.Level = "debug"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("Loaded config")

	line := buf.String()
	assert.Contains(t, line, "level=DEBUG")
	assert.Contains(t, line, `msg="Loaded config"`)
	assert.Contains(t, line, "service=plantcare")
	assert.NotContains(t, line, "env=")
}
