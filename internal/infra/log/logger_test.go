package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"locinsight/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(level string, debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "locinsight"
	cfg.Env.Debug = debug
	cfg.Env.Log.Level = level

	return cfg
}

func TestNewLogger_JSONCarriesServiceAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, testConfig("warn", false))
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("slow query", slog.Int("elapsed_ms", 1200))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "slow query", record["msg"])
	assert.Equal(t, "locinsight", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.NotContains(t, record, "source")
}

func TestNewLogger_DebugLowersLevelAndAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, testConfig("error", true))
	require.NoError(t, err)

	logger.Debug("query plan")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Contains(t, record, "source")
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" info ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for raw, want := range tests {
		got, err := parseLogLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}
