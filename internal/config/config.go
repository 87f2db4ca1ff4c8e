// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	JWT       JWTConfig
	Guest     GuestConfig
	RateLimit RateLimitConfig
	Retry     RetryConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds settings of the Redis instance keeping guest progress
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port           int
	MaxRequestSize int64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds token settings shared with the auth service
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// GuestConfig holds guest session settings
type GuestConfig struct {
	SessionTTL time.Duration
}

// RateLimitConfig holds per-IP rate limit settings
type RateLimitConfig struct {
	RequestsPerMinute int
}

// RetryConfig holds the retry policy of progress writes
type RetryConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	// Database configuration
	if cfg.Database.Host, err = requiredString("DB_HOST"); err != nil {
		return nil, err
	}
	dbPortStr, err := requiredString("DB_PORT")
	if err != nil {
		return nil, err
	}
	if cfg.Database.Port, err = strconv.Atoi(dbPortStr); err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	if cfg.Database.User, err = requiredString("DB_USER"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requiredString("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.DBName, err = requiredString("DB_NAME"); err != nil {
		return nil, err
	}

	// Redis configuration
	cfg.Redis.Host = stringOrDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = intOrDefault("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = intOrDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.Port, err = intOrDefault("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	maxRequestSize, err := intOrDefault("MAX_REQUEST_SIZE", 1<<20)
	if err != nil {
		return nil, err
	}
	cfg.Server.MaxRequestSize = int64(maxRequestSize)

	// Logging configuration
	cfg.Logging.Level = stringOrDefault("LOG_LEVEL", "info")

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// JWT configuration
	if cfg.JWT.Secret, err = requiredString("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.JWT.AccessTokenExpiry, err = durationOrDefault("JWT_ACCESS_TOKEN_EXPIRY", time.Hour); err != nil {
		return nil, err
	}

	// Guest sessions
	if cfg.Guest.SessionTTL, err = durationOrDefault("GUEST_SESSION_TTL", 720*time.Hour); err != nil {
		return nil, err
	}

	// Rate limit
	if cfg.RateLimit.RequestsPerMinute, err = intOrDefault("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}

	// Progress write retries
	maxRetries, err := intOrDefault("PROGRESS_UPSERT_MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}
	if maxRetries < 0 {
		return nil, fmt.Errorf("invalid PROGRESS_UPSERT_MAX_RETRIES: must not be negative")
	}
	cfg.Retry.MaxRetries = uint64(maxRetries)
	if cfg.Retry.InitialInterval, err = durationOrDefault("PROGRESS_UPSERT_RETRY_INTERVAL", 100*time.Millisecond); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the host:port address of Redis
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func requiredString(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

func stringOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intOrDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationOrDefault(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// parseOrigins splits a comma-separated origin list, allowing every origin when none is given
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
