package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Supported values of DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the application settings.
type Config struct {
	AppPort  string
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
	Log      LogConfig
	SeedData bool
}

// DatabaseConfig selects and locates the product store.
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// RabbitMQConfig locates the broker catalog events are published to.
// An empty URL disables messaging.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// Enabled reports whether a broker URL is configured.
func (c RabbitMQConfig) Enabled() bool { return c.URL != "" }

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "file:katalog.db?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "products")
	v.SetDefault("SEED_DATA", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load reads the configuration from environment variables, falling back to
// the defaults.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		AppPort: v.GetString("APP_PORT"),
		Database: DatabaseConfig{
			Driver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		SeedData: v.GetBool("SEED_DATA"),
	}

	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.Database.Driver != DriverMemory && cfg.Database.DSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required for driver %s", cfg.Database.Driver)
	}
	return cfg, nil
}
