package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	JWT        JWTConfig
	Compliance ComplianceConfig
	Matcher    MatcherConfig
	SMTP       SMTPConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds the verification key for access tokens. Tokens are minted by
// the external identity service; this API only verifies them.
type JWTConfig struct {
	Secret string
}

// ComplianceConfig controls the missed-report monitor. ReportDeadline is how
// long a checked-in employee may stay silent before an alert is raised;
// SweepInterval is the cadence of the background sweep.
type ComplianceConfig struct {
	ReportDeadline time.Duration
	SweepInterval  time.Duration
}

// MatcherConfig points at the external biometric matching service.
type MatcherConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	AlertsTo string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "realsteps_presence"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: 25,
		MinConns: 5,
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	reportDeadline, err := time.ParseDuration(getEnv("COMPLIANCE_REPORT_DEADLINE", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMPLIANCE_REPORT_DEADLINE: %w", err)
	}
	sweepInterval, err := time.ParseDuration(getEnv("COMPLIANCE_SWEEP_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMPLIANCE_SWEEP_INTERVAL: %w", err)
	}

	config.Compliance = ComplianceConfig{
		ReportDeadline: reportDeadline,
		SweepInterval:  sweepInterval,
	}

	matcherTimeout, err := time.ParseDuration(getEnv("MATCHER_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MATCHER_TIMEOUT: %w", err)
	}

	config.Matcher = MatcherConfig{
		BaseURL: getEnv("MATCHER_BASE_URL", ""),
		APIKey:  getEnv("MATCHER_API_KEY", ""),
		Timeout: matcherTimeout,
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		AlertsTo: getEnv("SMTP_ALERTS_TO", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Matcher.BaseURL == "" {
		return fmt.Errorf("MATCHER_BASE_URL is required")
	}
	if c.Compliance.ReportDeadline <= 0 {
		return fmt.Errorf("COMPLIANCE_REPORT_DEADLINE must be positive")
	}
	if c.Compliance.SweepInterval <= 0 {
		return fmt.Errorf("COMPLIANCE_SWEEP_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
