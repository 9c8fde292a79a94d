package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"rates-history/internal"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	RequestTimeout time.Duration
	MaxConcurrency int
	LogLevel       slog.Level
}

func LoadConfig() (Config, error) {
	return loadConfig()
}

// loadConfig reads the optional env files (".env" when none are given) and
// then RATES_* variables. Variables already set in the environment win.
func loadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("RATES")
	v.AutomaticEnv()

	v.SetDefault("request_timeout", "20s")
	v.SetDefault("max_concurrency", internal.MaxDays)
	v.SetDefault("log_level", "warn")

	var cfg Config

	raw := strings.TrimSpace(v.GetString("request_timeout"))
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return Config{}, fmt.Errorf("RATES_REQUEST_TIMEOUT %q: %w", raw, err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("RATES_REQUEST_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.RequestTimeout = timeout

	raw = strings.TrimSpace(v.GetString("max_concurrency"))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Config{}, fmt.Errorf("RATES_MAX_CONCURRENCY %q: %w", raw, err)
	}
	if n < 1 {
		return Config{}, fmt.Errorf("RATES_MAX_CONCURRENCY must be at least 1, got %d", n)
	}
	cfg.MaxConcurrency = n

	raw = strings.TrimSpace(v.GetString("log_level"))
	if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
		return Config{}, fmt.Errorf("RATES_LOG_LEVEL %q: %w", raw, err)
	}

	return cfg, nil
}
