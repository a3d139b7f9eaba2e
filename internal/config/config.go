package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Redis notification fan-out
	Redis RedisConfig

	// Admin authentication
	Auth AuthConfig

	// Dashboard behaviour
	Dashboard DashboardConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MigrationsPath  string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    time.Duration
	ConnectTimeout time.Duration
}

// RedisConfig holds Redis settings. An empty Addr disables publishing.
type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	Channel        string
	PublishTimeout time.Duration
}

// Enabled reports whether notifications are published to Redis
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// AuthConfig holds admin token settings. An empty JWTSecret disables auth.
type AuthConfig struct {
	JWTSecret string
	JWTIssuer string
	AdminRole string
}

// Enabled reports whether /v1 requires an admin bearer token
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// DashboardConfig holds list and display settings
type DashboardConfig struct {
	DefaultPageSize int
	MaxPageSize     int
	ActiveDays      int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			Name:           getEnv("DB_NAME", "collections_admin"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:   getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:   getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:    getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
			ConnectTimeout: getDurationEnv("DB_CONNECT_TIMEOUT", 5*time.Second),
		},
		Redis: RedisConfig{
			Addr:           getEnv("REDIS_ADDR", ""),
			Password:       getEnv("REDIS_PASSWORD", ""),
			DB:             getIntEnv("REDIS_DB", 0),
			Channel:        getEnv("REDIS_NOTIFY_CHANNEL", "admin:notifications"),
			PublishTimeout: getDurationEnv("REDIS_PUBLISH_TIMEOUT", 2*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
			JWTIssuer: getEnv("AUTH_JWT_ISSUER", "collections-admin-api"),
			AdminRole: getEnv("AUTH_ADMIN_ROLE", "admin"),
		},
		Dashboard: DashboardConfig{
			DefaultPageSize: getIntEnv("DASHBOARD_PAGE_SIZE", 50),
			MaxPageSize:     getIntEnv("DASHBOARD_MAX_PAGE_SIZE", 200),
			ActiveDays:      getIntEnv("USER_ACTIVE_DAYS", 30),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Dashboard.DefaultPageSize <= 0 || c.Dashboard.MaxPageSize < c.Dashboard.DefaultPageSize {
		return fmt.Errorf("DASHBOARD_PAGE_SIZE must be positive and not exceed DASHBOARD_MAX_PAGE_SIZE")
	}
	if c.Dashboard.ActiveDays <= 0 {
		return fmt.Errorf("USER_ACTIVE_DAYS must be positive")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
