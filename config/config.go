package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	USDA        USDAConfig
	Nutritionix NutritionixConfig
	Converter   ConverterConfig
	Session     SessionConfig
	RateLimit   RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// USDAConfig holds USDA FoodData Central API configuration
type USDAConfig struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	MaxResults int    `mapstructure:"max_results"`
}

// NutritionixConfig holds Nutritionix API configuration
type NutritionixConfig struct {
	AppID   string `mapstructure:"app_id"`
	AppKey  string `mapstructure:"app_key"`
	BaseURL string `mapstructure:"base_url"`
}

// ConverterConfig bounds the target calorie input
type ConverterConfig struct {
	MinCalories     float64 `mapstructure:"min_calories"`
	MaxCalories     float64 `mapstructure:"max_calories"`
	DefaultCalories float64 `mapstructure:"default_calories"`
	Step            float64 `mapstructure:"step"`
}

// SessionConfig controls how long an interaction is kept between requests
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
}

// Load loads configuration from a .env file, environment variables and
// config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/calconv/")

	// CALCONV_USDA_API_KEY -> usda.api_key
	v.SetEnvPrefix("CALCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env into the process environment. A missing file is
// not an error and variables already set are not overridden.
func loadEnvFile() error {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// USDA defaults
	v.SetDefault("usda.api_key", "")
	v.SetDefault("usda.base_url", "https://api.nal.usda.gov/fdc")
	v.SetDefault("usda.max_results", 20)

	// Nutritionix defaults
	v.SetDefault("nutritionix.app_id", "")
	v.SetDefault("nutritionix.app_key", "")
	v.SetDefault("nutritionix.base_url", "https://trackapi.nutritionix.com")

	// Calorie input defaults
	v.SetDefault("converter.min_calories", 10)
	v.SetDefault("converter.max_calories", 1000)
	v.SetDefault("converter.default_calories", 100)
	v.SetDefault("converter.step", 10)

	v.SetDefault("session.ttl", "30m")

	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.USDA.APIKey == "" {
		return fmt.Errorf("USDA API key is required (set CALCONV_USDA_API_KEY)")
	}

	if config.Nutritionix.AppID == "" || config.Nutritionix.AppKey == "" {
		return fmt.Errorf("Nutritionix app ID and key are required (set CALCONV_NUTRITIONIX_APP_ID and CALCONV_NUTRITIONIX_APP_KEY)")
	}

	if config.USDA.MaxResults <= 0 {
		return fmt.Errorf("USDA max results must be positive, got: %d", config.USDA.MaxResults)
	}

	c := config.Converter
	if c.MinCalories <= 0 || c.MaxCalories < c.MinCalories {
		return fmt.Errorf("calorie range must satisfy 0 < min <= max, got: [%g, %g]", c.MinCalories, c.MaxCalories)
	}
	if c.DefaultCalories < c.MinCalories || c.DefaultCalories > c.MaxCalories {
		return fmt.Errorf("default calories %g outside range [%g, %g]", c.DefaultCalories, c.MinCalories, c.MaxCalories)
	}
	if c.Step <= 0 {
		return fmt.Errorf("calorie step must be positive, got: %g", c.Step)
	}

	if config.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got: %s", config.Session.TTL)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("per-IP rate limit cannot be negative, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
