package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from environment
// variables and an optional configs/.env file.
type Config struct {
	AppName            string `mapstructure:"app_name"`
	Env                string `mapstructure:"app_env"`
	LogLevel           string `mapstructure:"log_level"`
	APIKey             string `mapstructure:"weather_api_key"`
	DefaultCity        string `mapstructure:"default_city"`
	OutputFormat       string `mapstructure:"output_format"`
	HTTPTimeoutSeconds int64  `mapstructure:"http_timeout_seconds"`
	RequestsPerMinute  int    `mapstructure:"requests_per_minute"`

	HTTPTimeout time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "pogoda-client")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("weather_api_key", "")
	v.SetDefault("default_city", "")
	v.SetDefault("output_format", "text")
	v.SetDefault("http_timeout_seconds", 10) // seconds
	v.SetDefault("requests_per_minute", 60)  // provider free tier quota

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.RequestsPerMinute < 0 {
		return nil, fmt.Errorf("invalid requests_per_minute (must not be negative)")
	}

	return &cfg, nil
}
