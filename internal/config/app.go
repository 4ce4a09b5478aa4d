package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	applog "github.com/caportal/prorate-calculator/internal/log"
)

// Environment variable names read by LoadAppConfig.
const (
	EnvPort         = "PRORATE_PORT"
	EnvLogLevel     = "PRORATE_LOG_LEVEL"
	EnvLogFormat    = "PRORATE_LOG_FORMAT"
	EnvOutputFormat = "PRORATE_OUTPUT_FORMAT"
	EnvBatchWorkers = "PRORATE_BATCH_WORKERS"
	EnvReadTimeout  = "PRORATE_READ_TIMEOUT"
)

// AppConfig holds process-level settings for the CLI and HTTP server.
type AppConfig struct {
	// HTTP Server
	Port        string
	ReadTimeout time.Duration

	// Logging
	LogLevel  slog.Level
	LogFormat string

	// Reports
	OutputFormat string
	BatchWorkers int
}

// DefaultAppConfig returns the settings used when nothing is configured.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Port:         "8080",
		ReadTimeout:  5 * time.Second,
		LogLevel:     slog.LevelInfo,
		LogFormat:    "text",
		OutputFormat: "console",
		BatchWorkers: 4,
	}
}

// LoadAppConfig reads an optional .env file (missing files are ignored) and
// then the PRORATE_* environment variables over the defaults.
func LoadAppConfig(envFiles ...string) (AppConfig, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else {
		for _, f := range envFiles {
			if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
				return AppConfig{}, fmt.Errorf("failed to load env file %s: %w", f, err)
			}
		}
	}

	cfg := DefaultAppConfig()

	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return AppConfig{}, fmt.Errorf("%s must be a TCP port, got %q", EnvPort, v)
		}
		cfg.Port = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := applog.ParseLevel(v)
		if err != nil {
			return AppConfig{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogFormat))); v != "" {
		if v != "text" && v != "json" {
			return AppConfig{}, fmt.Errorf("%s must be 'text' or 'json', got %q", EnvLogFormat, v)
		}
		cfg.LogFormat = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputFormat)); v != "" {
		cfg.OutputFormat = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBatchWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 256 {
			return AppConfig{}, fmt.Errorf("%s must be between 1 and 256, got %q", EnvBatchWorkers, v)
		}
		cfg.BatchWorkers = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvReadTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return AppConfig{}, fmt.Errorf("%s must be a positive duration, got %q", EnvReadTimeout, v)
		}
		cfg.ReadTimeout = d
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c AppConfig) Addr() string {
	return ":" + c.Port
}

// Logger builds the application logger described by the configuration.
func (c AppConfig) Logger() *applog.Logger {
	cfg := applog.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Format = c.LogFormat
	return applog.New(cfg)
}
