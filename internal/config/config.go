// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/mcoot/kellypool/internal/api"
	"github.com/mcoot/kellypool/internal/factory"
	redisstorage "github.com/mcoot/kellypool/internal/storage/redis"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config is the server configuration
type Config struct {
	Host            string        `env:"KPOOL_HOST"`
	Port            int           `env:"KPOOL_PORT"             envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"KPOOL_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	StorageType   string        `env:"STORAGE_TYPE"    envDefault:"memory"`
	RedisURL      string        `env:"REDIS_URL"`
	RedisTableTTL time.Duration `env:"REDIS_TABLE_TTL" envDefault:"12h"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the process environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadFrom parses the given environment instead of the process one
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values env parsing cannot
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("KPOOL_PORT out of range: %d", c.Port)
	}

	switch c.StorageType {
	case factory.StorageTypeMemory:
	case factory.StorageTypeRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL required when STORAGE_TYPE=%s", factory.StorageTypeRedis)
		}
		if c.RedisTableTTL <= 0 {
			return fmt.Errorf("REDIS_TABLE_TTL must be positive, got %s", c.RedisTableTTL)
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be memory or redis", c.StorageType)
	}

	switch c.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be json or text", c.LogFormat)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LOG_LEVEL
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger builds the server logger. The text format is a coloured console
// handler meant for local development.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}

	if c.LogFormat == LogFormatText {
		return slog.New(log.NewWithOptions(w, log.Options{
			Level:           log.Level(level),
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
		}))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Factory returns the application factory config
func (c Config) Factory(logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
	}

	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.TableTTL = c.RedisTableTTL
		cfg.RedisConfig = &redisCfg
	}

	return cfg
}

// Server returns the HTTP server config
func (c Config) Server() api.ServerConfig {
	serverCfg := api.DefaultServerConfig()
	serverCfg.Host = c.Host
	serverCfg.Port = c.Port
	serverCfg.ShutdownTimeout = c.ShutdownTimeout
	return serverCfg
}
