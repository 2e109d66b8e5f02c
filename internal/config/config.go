package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// RedisConfig holds Redis connection settings. Redis backs the leaderboard
// and rate limiting; both degrade gracefully when it is disabled.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Redis configuration (optional)
	cfg.Redis.Enabled = os.Getenv("REDIS_ENABLED") == "true"
	if cfg.Redis.Enabled {
		if cfg.Redis.Host, err = requireEnv("REDIS_HOST"); err != nil {
			return nil, err
		}
		redisPort, err := requireEnv("REDIS_PORT")
		if err != nil {
			return nil, err
		}
		cfg.Redis.Port, err = strconv.Atoi(redisPort)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
		}
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		if rawDB := os.Getenv("REDIS_DB"); rawDB != "" {
			cfg.Redis.DB, err = strconv.Atoi(rawDB)
			if err != nil {
				return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
			}
		}
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}
