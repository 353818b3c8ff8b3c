package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/kellypool/internal/factory"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, factory.StorageTypeMemory, cfg.StorageType)
	assert.Equal(t, 12*time.Hour, cfg.RedisTableTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestRedisConfig(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"STORAGE_TYPE":    "redis",
		"REDIS_URL":       "redis://cache:6379/1",
		"REDIS_TABLE_TTL": "90m",
		"KPOOL_PORT":      "9090",
	})
	require.NoError(t, err)

	fc := cfg.Factory(nil)
	assert.Equal(t, factory.StorageTypeRedis, fc.StorageType)
	require.NotNil(t, fc.RedisConfig)
	assert.Equal(t, "redis://cache:6379/1", fc.RedisConfig.URL)
	assert.Equal(t, 90*time.Minute, fc.RedisConfig.TableTTL)

	assert.Equal(t, 9090, cfg.Server().Port)
}

func TestMemoryConfigHasNoRedis(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Nil(t, cfg.Factory(nil).RedisConfig)
}

func TestValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"redis without url": {"STORAGE_TYPE": "redis"},
		"unknown storage":   {"STORAGE_TYPE": "sqlite"},
		"bad log format":    {"LOG_FORMAT": "xml"},
		"bad log level":     {"LOG_LEVEL": "loud"},
		"port out of range": {"KPOOL_PORT": "70000"},
		"port not a number": {"KPOOL_PORT": "http"},
		"bad ttl":           {"STORAGE_TYPE": "redis", "REDIS_URL": "redis://x:6379", "REDIS_TABLE_TTL": "0s"},
	}

	for name, environ := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(environ)
			assert.Error(t, err)
		})
	}
}

func TestJSONLoggerRespectsLevel(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"LOG_LEVEL": "warn"})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", slog.String("table_id", "ABC123"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "ABC123", entry["table_id"])
}

func TestTextLogger(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"LOG_FORMAT": "text", "LOG_LEVEL": "debug"})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Debug("table created", slog.String("table_id", "ABC123"))

	assert.Contains(t, buf.String(), "table created")
	assert.Contains(t, buf.String(), "ABC123")
}
