package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL          string        `mapstructure:"DATABASE_URL"`
	DatabaseHost         string        `mapstructure:"DB_HOST"`
	DatabasePort         string        `mapstructure:"DB_PORT"`
	DatabaseUser         string        `mapstructure:"DB_USER"`
	DatabasePassword     string        `mapstructure:"DB_PASSWORD"`
	DatabaseName         string        `mapstructure:"DB_NAME"`
	DatabaseSSLMode      string        `mapstructure:"DB_SSL_MODE"`
	DatabaseMaxOpenConns int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DatabaseMaxIdleConns int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DatabaseConnLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`

	// Serializable transaction retry policy for assignment and capacity writes
	TxMaxRetries     int           `mapstructure:"TX_MAX_RETRIES"`
	TxRetryBaseDelay time.Duration `mapstructure:"TX_RETRY_BASE_DELAY"`

	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "committee_tracker")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 10)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	// Transaction retry defaults
	viper.SetDefault("TX_MAX_RETRIES", 3)
	viper.SetDefault("TX_RETRY_BASE_DELAY", "25ms")

	viper.SetDefault("REQUEST_TIMEOUT", "15s")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.TxMaxRetries < 0 {
		return fmt.Errorf("TX_MAX_RETRIES must not be negative")
	}

	if config.TxRetryBaseDelay <= 0 {
		return fmt.Errorf("TX_RETRY_BASE_DELAY must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
