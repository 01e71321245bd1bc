package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "copro-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	DatabaseHost     string        `mapstructure:"DB_HOST"`
	DatabasePort     string        `mapstructure:"DB_PORT"`
	DatabaseUser     string        `mapstructure:"DB_USER"`
	DatabasePassword string        `mapstructure:"DB_PASSWORD"`
	DatabaseName     string        `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string        `mapstructure:"DB_SSL_MODE"`
	DBConnectTimeout time.Duration `mapstructure:"DB_CONNECT_TIMEOUT"`
	DBQueryTimeout   time.Duration `mapstructure:"DB_QUERY_TIMEOUT"`

	// Token configuration. JWTSecret has no default on purpose.
	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	TokenTTL    time.Duration `mapstructure:"TOKEN_TTL"`
	TokenIssuer string        `mapstructure:"TOKEN_ISSUER"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()
	// Keys without a default are invisible to Unmarshal unless bound explicitly
	_ = v.BindEnv("DATABASE_URL")
	_ = v.BindEnv("JWT_SECRET")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "copro")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", "1m")
	v.SetDefault("DB_QUERY_TIMEOUT", "5s")

	// Token defaults
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("TOKEN_ISSUER", "copro-backend")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"})
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
	if strings.TrimSpace(config.JWTSecret) == "" {
		return apperrors.ErrSigningSecretMissing
	}

	if config.TokenTTL <= 0 {
		return apperrors.NewConfigurationError("TOKEN_TTL must be positive")
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
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
