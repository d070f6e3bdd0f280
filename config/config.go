package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Provider  ProviderConfig
	Credits   CreditsConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProviderConfig holds image transformation provider configuration.
// An empty API key disables the provider; the service then serves
// recommendations without transformed images.
type ProviderConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CreditsConfig holds credit ledger configuration
type CreditsConfig struct {
	Store          string `mapstructure:"store"` // "memory" or "sqlite"
	SQLitePath     string `mapstructure:"sqlite_path"`
	InitialBalance int    `mapstructure:"initial_balance"`
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	PerIPRPS   float64 `mapstructure:"per_ip_rps"`
	PerIPBurst int     `mapstructure:"per_ip_burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/roomlens/")

	// Environment variable settings
	v.SetEnvPrefix("ROOMLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Provider defaults
	v.SetDefault("provider.base_url", "https://api.openai.com/v1")
	v.SetDefault("provider.model", "gpt-image-1")
	v.SetDefault("provider.timeout", "60s")

	// Credits defaults
	v.SetDefault("credits.store", "memory")
	v.SetDefault("credits.sqlite_path", "./data/credits.db")
	v.SetDefault("credits.initial_balance", 3)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip_rps", 5)
	v.SetDefault("ratelimit.per_ip_burst", 10)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Credits.Store != "memory" && config.Credits.Store != "sqlite" {
		return fmt.Errorf("credits store must be 'memory' or 'sqlite', got: %s", config.Credits.Store)
	}

	if config.Credits.Store == "sqlite" && config.Credits.SQLitePath == "" {
		return fmt.Errorf("SQLite path is required when credits store is 'sqlite'")
	}

	if config.Credits.InitialBalance < 0 {
		return fmt.Errorf("credits initial balance must not be negative, got: %d", config.Credits.InitialBalance)
	}

	if config.RateLimit.PerIPRPS <= 0 || config.RateLimit.PerIPBurst <= 0 {
		return fmt.Errorf("rate limit values must be positive")
	}

	return nil
}
