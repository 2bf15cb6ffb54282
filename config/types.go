package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Retry   RetryConfig   `mapstructure:"retry"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds Griddy API connection details
type APIConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	AccessToken  string        `mapstructure:"access_token"`
	RefreshToken string        `mapstructure:"refresh_token"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// RetryConfig controls the client's retry behavior
type RetryConfig struct {
	MaxRetries            int           `mapstructure:"max_retries"`
	InitialDelay          time.Duration `mapstructure:"initial_delay"`
	MaxDelay              time.Duration `mapstructure:"max_delay"`
	BackoffMultiplier     float64       `mapstructure:"backoff_multiplier"`
	RetryableStatusCodes  []int         `mapstructure:"retryable_status_codes"`
	RetryConnectionErrors bool          `mapstructure:"retry_connection_errors"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
