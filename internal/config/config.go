package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application's configuration values, populated from
// environment variables (a .env file is loaded by the entrypoints first).
type Config struct {
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	Port        string `envconfig:"PORT" default:"3000"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	Postgres    PostgresConfig
}

// PostgresConfig holds the discrete connection fields used when
// DATABASE_URL is not set.
type PostgresConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"storemap"`
}

// DSN returns the connection string, preferring DATABASE_URL when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Postgres.Host, c.Postgres.User, c.Postgres.Password, c.Postgres.DBName, c.Postgres.Port,
	)
}

// Load initializes the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	return &cfg, nil
}
