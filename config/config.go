package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-this-in-production"

// Config holds all configuration for the application.
type Config struct {
	// Server
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string

	// Database
	DBHost            string
	DBPort            int
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Auth
	JWTSecret     []byte
	JWTExpiration time.Duration

	LogLevel string
	PageSize int

	Notify NotifyConfig
}

// NotifyConfig configures the notification dispatcher and its channels.
type NotifyConfig struct {
	Async       bool
	Workers     int
	QueueSize   int
	MaxAttempts int

	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromAddress string
	EmailFromName    string

	SocialEnabled      bool
	TwitterAPIURL      string
	TwitterAccessToken string
}

// SMTPConfigured reports whether real email delivery is possible.
func (n NotifyConfig) SMTPConfigured() bool {
	return n.SMTPHost != "" && n.EmailFromAddress != ""
}

// SocialConfigured reports whether social posting should be attempted.
func (n NotifyConfig) SocialConfigured() bool {
	return n.SocialEnabled && n.TwitterAccessToken != ""
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", getEnv("PORT", "8080")),
		ReadTimeout:       getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		CORSOrigins:       getEnvList("CORS_ORIGINS", []string{"*"}),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnvInt("DB_PORT", 5432),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "yournews"),
		DBSSLMode:         getEnv("DB_SSL_MODE", "disable"),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		JWTSecret:         []byte(getEnv("JWT_SECRET", defaultJWTSecret)),
		JWTExpiration:     getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		PageSize:          getEnvInt("PAGE_SIZE", 20),
		Notify: NotifyConfig{
			Async:              getEnvBool("NOTIFY_ASYNC", true),
			Workers:            getEnvInt("NOTIFY_WORKERS", 4),
			QueueSize:          getEnvInt("NOTIFY_QUEUE_SIZE", 256),
			MaxAttempts:        getEnvInt("NOTIFY_MAX_ATTEMPTS", 3),
			SMTPHost:           getEnv("SMTP_HOST", ""),
			SMTPPort:           getEnvInt("SMTP_PORT", 587),
			SMTPUsername:       getEnv("SMTP_USERNAME", ""),
			SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
			EmailFromAddress:   getEnv("EMAIL_FROM_ADDRESS", "noreply@yournews.local"),
			EmailFromName:      getEnv("EMAIL_FROM_NAME", "YourNews"),
			SocialEnabled:      getEnvBool("SOCIAL_ENABLED", false),
			TwitterAPIURL:      getEnv("TWITTER_API_URL", "https://api.twitter.com"),
			TwitterAccessToken: getEnv("TWITTER_ACCESS_TOKEN", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if len(c.JWTSecret) == 0 {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be at least 1")
	}
	if c.Notify.Workers < 1 {
		return fmt.Errorf("NOTIFY_WORKERS must be at least 1")
	}
	if c.Notify.QueueSize < 1 {
		return fmt.Errorf("NOTIFY_QUEUE_SIZE must be at least 1")
	}
	if c.Notify.MaxAttempts < 1 {
		return fmt.Errorf("NOTIFY_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
