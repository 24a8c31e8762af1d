package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains all runtime settings for the caddie service.
type Config struct {
	BindAddr         string
	ShutdownTimeout  time.Duration
	MetricsNamespace string

	AllowAnyOrigin bool

	// Session persistence. DatabaseURL wins over RedisAddr; with neither set
	// the service runs on the in-memory store.
	DatabaseURL string
	RedisAddr   string
	RedisDB     int
	SessionTTL  time.Duration

	// External place search.
	PlacesAPIKey  string
	PlacesBaseURL string
	SearchTimeout time.Duration
	SearchRadius  int

	// Conversation history kept per session before logical truncation.
	HistoryLimit int
}

// Load reads environment variables and applies safe defaults.
func Load() (Config, error) {
	cfg := Config{
		BindAddr:         envOrDefault("APP_BIND_ADDR", ":8080"),
		MetricsNamespace: envOrDefault("APP_METRICS_NAMESPACE", "caddie"),
		AllowAnyOrigin:   false,
		DatabaseURL:      trimmedEnv("DATABASE_URL"),
		RedisAddr:        trimmedEnv("REDIS_ADDR"),
		RedisDB:          0,
		SessionTTL:       24 * time.Hour,
		PlacesAPIKey:     trimmedEnv("PLACES_API_KEY"),
		PlacesBaseURL:    envOrDefault("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		SearchTimeout:    10 * time.Second,
		SearchRadius:     16000,
		HistoryLimit:     40,
		ShutdownTimeout:  15 * time.Second,
	}

	var err error
	cfg.ShutdownTimeout, err = durationFromEnv("APP_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionTTL, err = durationFromEnv("SESSION_TTL", cfg.SessionTTL)
	if err != nil {
		return Config{}, err
	}
	cfg.SearchTimeout, err = durationFromEnv("SEARCH_TIMEOUT", cfg.SearchTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.RedisDB, err = intFromEnv("REDIS_DB", cfg.RedisDB)
	if err != nil {
		return Config{}, err
	}
	cfg.SearchRadius, err = intFromEnv("SEARCH_RADIUS_METERS", cfg.SearchRadius)
	if err != nil {
		return Config{}, err
	}
	cfg.HistoryLimit, err = intFromEnv("SESSION_HISTORY_LIMIT", cfg.HistoryLimit)
	if err != nil {
		return Config{}, err
	}
	cfg.AllowAnyOrigin, err = boolFromEnv("APP_ALLOW_ANY_ORIGIN", cfg.AllowAnyOrigin)
	if err != nil {
		return Config{}, err
	}

	if cfg.SessionTTL < time.Minute {
		return Config{}, fmt.Errorf("SESSION_TTL must be at least 1m")
	}
	if cfg.SearchTimeout <= 0 {
		return Config{}, fmt.Errorf("SEARCH_TIMEOUT must be positive")
	}
	if cfg.SearchRadius <= 0 {
		return Config{}, fmt.Errorf("SEARCH_RADIUS_METERS must be positive")
	}
	if cfg.HistoryLimit <= 0 {
		return Config{}, fmt.Errorf("SESSION_HISTORY_LIMIT must be positive")
	}
	if cfg.RedisDB < 0 {
		return Config{}, fmt.Errorf("REDIS_DB must be >= 0")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func trimmedEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := trimmedEnv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return d, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	v := trimmedEnv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return n, nil
}

func boolFromEnv(key string, fallback bool) (bool, error) {
	v := strings.ToLower(trimmedEnv(key))
	if v == "" {
		return fallback, nil
	}
	switch v {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%s parse error: expected bool", key)
	}
}
