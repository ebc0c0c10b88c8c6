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

// Snapshot backends.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
	BackendMemory   = "memory"
)

// ErrInvalidConfig is returned when the environment describes an unusable setup.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Snapshot
	SnapshotBackend string
	SnapshotPath    string
	SnapshotName    string
	EncryptionKey   string

	// Database
	SQLitePath  string
	DatabaseURL string

	// Redis
	RedisURL string

	// S3
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool

	// RabbitMQ
	RabbitMQURL string

	// Circuit breaker around remote snapshot stores
	BreakerFailureThreshold int
	BreakerTimeout          time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		SnapshotBackend: strings.ToLower(getEnv("ROLODEX_SNAPSHOT_BACKEND", BackendFile)),
		SnapshotPath:    getEnv("ROLODEX_SNAPSHOT_PATH", "contacts.snapshot"),
		SnapshotName:    getEnv("ROLODEX_SNAPSHOT_NAME", "default"),
		EncryptionKey:   getEnv("ROLODEX_ENCRYPTION_KEY", ""),

		SQLitePath:  getEnv("SQLITE_PATH", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3PathStyle: getBoolEnv("S3_PATH_STYLE", false),

		RabbitMQURL: getEnv("RABBITMQ_URL", ""),

		BreakerFailureThreshold: getIntEnv("BREAKER_FAILURE_THRESHOLD", 5),
		BreakerTimeout:          getDurationEnv("BREAKER_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected snapshot backend has what it needs.
func (c *Config) Validate() error {
	switch c.SnapshotBackend {
	case BackendFile:
		if c.SnapshotPath == "" {
			return fmt.Errorf("%w: ROLODEX_SNAPSHOT_PATH is required for the file backend", ErrInvalidConfig)
		}
	case BackendSQLite, BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for the postgres backend", ErrInvalidConfig)
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("%w: REDIS_URL is required for the redis backend", ErrInvalidConfig)
		}
	case BackendS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("%w: S3_BUCKET is required for the s3 backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown snapshot backend %q", ErrInvalidConfig, c.SnapshotBackend)
	}

	if c.SnapshotName == "" {
		return fmt.Errorf("%w: ROLODEX_SNAPSHOT_NAME must not be empty", ErrInvalidConfig)
	}
	if c.BreakerFailureThreshold < 1 {
		return fmt.Errorf("%w: BREAKER_FAILURE_THRESHOLD must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// IsRemoteBackend reports whether the snapshot lives behind a network client.
func (c *Config) IsRemoteBackend() bool {
	switch c.SnapshotBackend {
	case BackendPostgres, BackendRedis, BackendS3:
		return true
	}
	return false
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
