package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"funnel/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_JSONCarriesServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "funnel"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := build(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "funnel", line["service"])
	assert.Equal(t, "test", line["env"])
}
