package retry

import (
	"math"
	"time"
)

// Default configuration values applied by DefaultConfig.
const (
	DefaultMaxRetries        = 3
	DefaultInitialDelay      = 250 * time.Millisecond
	DefaultMaxDelay          = 10 * time.Second
	DefaultBackoffMultiplier = 2.0
)

// Config controls retry behavior for a client. A Config is read-only once
// constructed and may be shared across any number of concurrent calls.
type Config struct {
	// MaxRetries is the number of retries after the first attempt.
	// Zero means every failure is final.
	MaxRetries int

	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the computed backoff delay.
	MaxDelay time.Duration

	// BackoffMultiplier scales the delay between consecutive retries.
	// Values below 1 are treated as 1 (constant backoff).
	BackoffMultiplier float64

	// RetryableStatusCodes is the set of HTTP status codes worth retrying.
	RetryableStatusCodes map[int]bool

	// RetryConnectionErrors enables retries when no response was received
	// at all.
	RetryConnectionErrors bool
}

// DefaultConfig returns the retry configuration used when a client is
// constructed without an explicit one: three retries with exponential
// backoff on rate limiting, server errors, and connection failures.
func DefaultConfig() Config {
	return Config{
		MaxRetries:        DefaultMaxRetries,
		InitialDelay:      DefaultInitialDelay,
		MaxDelay:          DefaultMaxDelay,
		BackoffMultiplier: DefaultBackoffMultiplier,
		RetryableStatusCodes: map[int]bool{
			429: true,
			500: true,
			502: true,
			503: true,
			504: true,
		},
		RetryConnectionErrors: true,
	}
}

// Delay computes the backoff before retry number attempt (1-based):
// InitialDelay * BackoffMultiplier^(attempt-1), clamped to
// [InitialDelay, MaxDelay].
func (c Config) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	mult := c.BackoffMultiplier
	if mult < 1 {
		mult = 1
	}
	d := time.Duration(float64(c.InitialDelay) * math.Pow(mult, float64(attempt-1)))
	if d < c.InitialDelay {
		d = c.InitialDelay
	}
	if c.MaxDelay > 0 && d > c.MaxDelay {
		d = c.MaxDelay
	}
	return d
}
