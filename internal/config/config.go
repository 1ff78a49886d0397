package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Platform API configuration
	APIBaseURL    string `mapstructure:"API_BASE_URL"`
	APITimeoutSec int    `mapstructure:"API_TIMEOUT_SEC"`

	// Optional service token used when no browser session token is forwarded
	ServiceAccessToken string `mapstructure:"SERVICE_ACCESS_TOKEN"`

	// Association sync configuration
	HydrationConcurrency   int `mapstructure:"HYDRATION_CONCURRENCY"`
	NotificationBufferSize int `mapstructure:"NOTIFICATION_BUFFER_SIZE"`

	// User-facing error message overrides (YAML)
	MessagesFile string `mapstructure:"MESSAGES_FILE"`

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

	// ALLOWED_ORIGINS arrives as a comma separated string when set through the environment
	if len(config.AllowedOrigins) == 1 && strings.Contains(config.AllowedOrigins[0], ",") {
		config.AllowedOrigins = splitList(config.AllowedOrigins[0])
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Platform API defaults
	viper.SetDefault("API_BASE_URL", "http://localhost:3000/api")
	viper.SetDefault("API_TIMEOUT_SEC", 15)
	viper.SetDefault("SERVICE_ACCESS_TOKEN", "")

	// Association sync defaults
	viper.SetDefault("HYDRATION_CONCURRENCY", 8)
	viper.SetDefault("NOTIFICATION_BUFFER_SIZE", 100)

	viper.SetDefault("MESSAGES_FILE", "")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validate(config *Config) error {
	if config.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if config.APITimeoutSec <= 0 {
		return fmt.Errorf("API_TIMEOUT_SEC must be positive")
	}
	if config.HydrationConcurrency <= 0 {
		return fmt.Errorf("HYDRATION_CONCURRENCY must be positive")
	}
	if config.NotificationBufferSize <= 0 {
		return fmt.Errorf("NOTIFICATION_BUFFER_SIZE must be positive")
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
