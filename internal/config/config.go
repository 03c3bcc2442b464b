// Package config loads the API configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds everything main needs to wire the API
type Config struct {
	Server    ServerConfig
	Storage   string
	Postgres  PostgresConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	LogLevel  string
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// PostgresConfig holds the configuration for PostgreSQL connection
type PostgresConfig struct {
	URL      string // Overrides the individual fields when set
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	MaxConns int32
}

// ConnString returns the connection string for pgx
func (c PostgresConfig) ConnString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
	)
}

// RedisConfig holds the Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// RateLimitConfig limits quiz requests per client. A zero Limit disables it.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	shutdown, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	maxConns, err := getInt("POSTGRES_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	limit, err := getInt("QUIZ_RATE_LIMIT", 0)
	if err != nil {
		return nil, err
	}
	window, err := getDuration("QUIZ_RATE_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnv("SERVER_ADDR", ":8080"),
			ShutdownTimeout: shutdown,
		},
		Storage: strings.ToLower(getEnv("STORAGE", StoragePostgres)),
		Postgres: PostgresConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:   getEnv("POSTGRES_DB", "trivia"),
			MaxConns: int32(maxConns),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		RateLimit: RateLimitConfig{
			Limit:  limit,
			Window: window,
		},
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}
	if cfg.RateLimit.Limit < 0 {
		return nil, fmt.Errorf("QUIZ_RATE_LIMIT must not be negative")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
