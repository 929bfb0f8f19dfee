// Package config loads service configuration from an env file and the process environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application, database, Redis, Kafka, gRPC, logging, JWT and seeding settings.
type Config struct {
	// Application
	AppHost     string
	AppPort     string
	LogLevel    string
	LogDevelop  bool
	RateLimit   float64 // requests per second per client
	RateBurst   int
	ShutdownTTL time.Duration

	// PostgreSQL
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Redis
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	// Kafka, disabled when no brokers are configured
	KafkaBrokers []string
	KafkaTopic   string

	// gRPC health endpoint
	GRPCHost string
	GRPCPort string

	// JWT
	JWTSecretKey string
	JWTExp       time.Duration

	// Login throttling
	LoginMaxAttempts int
	LoginLockout     time.Duration

	// Seeding
	AdminUsername   string
	AdminPassword   string
	DefaultUsername string
	DefaultPassword string
	SeedBooks       bool
}

// Load reads the env file at path (a missing file is not an error) and
// returns the configuration with defaults applied.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.LogDevelop, err = strconv.ParseBool(getEnv("APP_LOG_DEVELOPMENT", "false")); err != nil {
		return nil, fmt.Errorf("APP_LOG_DEVELOPMENT: %w", err)
	}
	if cfg.RateLimit, err = strconv.ParseFloat(getEnv("APP_RATE_LIMIT_RPS", "20"), 64); err != nil {
		return nil, fmt.Errorf("APP_RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateBurst, err = getEnvInt("APP_RATE_LIMIT_BURST", 40); err != nil {
		return nil, err
	}
	shutdown, err := getEnvInt("APP_SHUTDOWN_TIMEOUT_SECOND", 10)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTTL = time.Duration(shutdown) * time.Second

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "library")
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "library.borrow-events")

	// gRPC config
	cfg.GRPCHost = getEnv("GRPC_HOST", "localhost")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExp, err := getEnvInt("JWT_EXP_SECOND", 3600)
	if err != nil {
		return nil, err
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// Login throttling config
	if cfg.LoginMaxAttempts, err = getEnvInt("LOGIN_MAX_ATTEMPTS", 5); err != nil {
		return nil, err
	}
	lockout, err := getEnvInt("LOGIN_LOCKOUT_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	cfg.LoginLockout = time.Duration(lockout) * time.Second

	// Seeding config
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "Admin@123")
	cfg.DefaultUsername = getEnv("DEFAULT_USER_USERNAME", "user")
	cfg.DefaultPassword = getEnv("DEFAULT_USER_PASSWORD", "User@123")
	if cfg.SeedBooks, err = strconv.ParseBool(getEnv("SEED_BOOKS", "true")); err != nil {
		return nil, fmt.Errorf("SEED_BOOKS: %w", err)
	}

	return cfg, nil
}

// PostgresDSN returns the pgx connection URL.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// HTTPAddr returns the listen address of the HTTP server.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// GRPCAddr returns the listen address of the gRPC health server.
func (c *Config) GRPCAddr() string {
	return fmt.Sprintf("%s:%s", c.GRPCHost, c.GRPCPort)
}

// RedisAddr returns the Redis host:port pair.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
