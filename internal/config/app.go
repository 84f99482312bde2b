package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends accepted by CACHE_BACKEND.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

// AppConfig holds the settings of the HTTP server, loaded from the
// environment (optionally seeded from a .env file).
type AppConfig struct {
	Port      string
	LogLevel  string
	LogFormat string

	CacheBackend  string
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitRPS   float64
	RateLimitBurst int

	// MaxHorizonYears bounds both horizons accepted from the form and API.
	MaxHorizonYears int
}

// LoadAppConfig reads .env files (missing files are ignored) and then the
// process environment. Variables already set in the environment win.
func LoadAppConfig(envFiles ...string) (*AppConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "json")),
		CacheBackend:  strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendMemory)),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	var err error
	if cfg.CacheTTL, err = getEnvAsDuration("CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvAsInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvAsFloat("RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvAsInt("RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}
	if cfg.MaxHorizonYears, err = getEnvAsInt("MAX_HORIZON_YEARS", 60); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded settings for consistency.
func (c *AppConfig) Validate() error {
	switch c.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis, CacheBackendNone:
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of memory, redis, none; got %q", c.CacheBackend)
	}
	if c.CacheBackend != CacheBackendNone && c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive for the %s cache; got %s", c.CacheBackend, c.CacheTTL)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text; got %q", c.LogFormat)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit must be positive (rps=%v burst=%d)", c.RateLimitRPS, c.RateLimitBurst)
	}
	if c.MaxHorizonYears < 1 {
		return fmt.Errorf("MAX_HORIZON_YEARS must be at least 1; got %d", c.MaxHorizonYears)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s (%q): %w", key, raw, err)
	}
	return v, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s (%q): %w", key, raw, err)
	}
	return v, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s (%q): %w", key, raw, err)
	}
	return v, nil
}
