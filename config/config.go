package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/johngriebel/griddy-go/retry"
)

// Load loads the configuration from file. An empty configPath searches the
// standard locations: the current directory, ~/.griddy, and /etc/griddy.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".griddy"))
		}
		v.AddConfigPath("/etc/griddy/")
	}

	v.SetEnvPrefix("GRIDDY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://api.griddy.example")
	v.SetDefault("api.timeout", 30*time.Second)

	v.SetDefault("retry.max_retries", retry.DefaultMaxRetries)
	v.SetDefault("retry.initial_delay", retry.DefaultInitialDelay)
	v.SetDefault("retry.max_delay", retry.DefaultMaxDelay)
	v.SetDefault("retry.backoff_multiplier", retry.DefaultBackoffMultiplier)
	v.SetDefault("retry.retryable_status_codes", []int{429, 500, 502, 503, 504})
	v.SetDefault("retry.retry_connection_errors", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	if cfg.API.AccessToken == "" || cfg.API.AccessToken == "your-token-here" {
		return fmt.Errorf("api.access_token must be set to a valid token")
	}

	if cfg.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative")
	}

	if cfg.Retry.BackoffMultiplier < 1 {
		return fmt.Errorf("retry.backoff_multiplier must be at least 1")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// RetryConfig converts the file representation into the client's retry
// configuration.
func (c *Config) RetryConfig() retry.Config {
	codes := make(map[int]bool, len(c.Retry.RetryableStatusCodes))
	for _, code := range c.Retry.RetryableStatusCodes {
		codes[code] = true
	}
	return retry.Config{
		MaxRetries:            c.Retry.MaxRetries,
		InitialDelay:          c.Retry.InitialDelay,
		MaxDelay:              c.Retry.MaxDelay,
		BackoffMultiplier:     c.Retry.BackoffMultiplier,
		RetryableStatusCodes:  codes,
		RetryConnectionErrors: c.Retry.RetryConnectionErrors,
	}
}
