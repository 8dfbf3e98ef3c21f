package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultJWTSecret is only meant for local development.
const DefaultJWTSecret = "change-me-sales-dashboard-development-secret"

// Config holds application settings
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig `envconfig:"DB"`
	Auth      AuthConfig
	Dashboard DashboardConfig
	Log       LogConfig
}

// ServerConfig - HTTP server settings
type ServerConfig struct {
	Port           string        `default:"3001" validate:"required"`
	ReadTimeout    time.Duration `split_words:"true" default:"15s"`
	WriteTimeout   time.Duration `split_words:"true" default:"15s"`
	IdleTimeout    time.Duration `split_words:"true" default:"60s"`
	CORSOrigins    []string      `split_words:"true" default:"*"`
	LoginRateLimit int           `split_words:"true" default:"10" validate:"min=1"`
}

// DatabaseConfig - database connection settings
type DatabaseConfig struct {
	Driver          string `default:"sqlite" validate:"oneof=sqlite postgres"`
	Path            string `default:"sales_dashboard.db"`
	Host            string `default:"localhost"`
	Port            string `default:"5432"`
	User            string `default:"postgres"`
	Password        string `default:"postgres"`
	Name            string `default:"sales_dashboard"`
	SSLMode         string `split_words:"true" default:"disable"`
	ConnectAttempts int    `split_words:"true" default:"30" validate:"min=1"`
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// AuthConfig - session token and bootstrap administrator settings
type AuthConfig struct {
	JWTSecret     string        `split_words:"true" default:"change-me-sales-dashboard-development-secret" validate:"required"`
	TokenTTL      time.Duration `split_words:"true" default:"168h" validate:"gt=0"`
	AdminUsername string        `split_words:"true" default:"admin" validate:"required"`
	AdminPassword string        `split_words:"true" default:"admin123" validate:"required"`
	AdminName     string        `split_words:"true" default:"Administrator" validate:"required"`
}

// UsesDefaultSecret reports whether the signing key was left at its development value.
func (c *AuthConfig) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// DashboardConfig - aggregation settings
type DashboardConfig struct {
	// TargetMode selects where employee targets are stored:
	// "monthly" uses the monthly_targets table, "fixed" uses the employee fields.
	TargetMode string `split_words:"true" default:"monthly" validate:"oneof=monthly fixed"`
}

// LogConfig - logger settings
type LogConfig struct {
	Format string `default:"json" validate:"oneof=json text"`
	Level  string `default:"info" validate:"oneof=debug info warn error"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
