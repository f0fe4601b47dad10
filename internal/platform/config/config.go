// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"volatility_report/internal/feature/report/usecase"
	"volatility_report/internal/platform/externalapi/tdameritrade"
)

// AppConfig is the configuration of one report run.
type AppConfig struct {
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	TDAmeritrade tdameritrade.Config
	Report       usecase.Config
}

// Load reads .env files (when present) into the process environment and
// maps the environment onto AppConfig.
func Load(files ...string) (*AppConfig, error) {
	// .env が無い環境（本番など）もあるため読み込み失敗は無視する
	if err := godotenv.Load(files...); err != nil {
		slog.Debug(".env not loaded; using system environment variables", "error", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Report.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseLevel maps a LOG_LEVEL value onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
