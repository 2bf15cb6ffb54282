package retry

import (
	"errors"
	"time"
)

// ClassifiedError is implemented by errors that have already been mapped to
// the client's error taxonomy. The policy inspects the classification only;
// it never re-interprets raw transport failures.
type ClassifiedError interface {
	error

	// HTTPStatus returns the response status code, or 0 when no response
	// was received.
	HTTPStatus() int

	// ConnectionError reports whether the failure happened before any
	// response arrived.
	ConnectionError() bool

	// ServerDelay returns a server-supplied retry delay (Retry-After) when
	// the response carried one.
	ServerDelay() (time.Duration, bool)
}

// Decision is the policy's verdict for a failed attempt.
type Decision struct {
	Retry bool
	Delay time.Duration
}

// Stop returns a Decision that ends the attempt loop.
func Stop() Decision { return Decision{} }

// WaitThen returns a Decision that continues after waiting d.
func WaitThen(d time.Duration) Decision { return Decision{Retry: true, Delay: d} }

// Policy decides whether and when a failed call should be retried.
type Policy struct {
	cfg Config
}

// NewPolicy creates a policy over the given configuration.
func NewPolicy(cfg Config) *Policy {
	return &Policy{cfg: cfg}
}

// Config returns the configuration the policy was built from.
func (p *Policy) Config() Config { return p.cfg }

// Decide returns the verdict for the given failed attempt (1-based). Only
// classified errors whose status code is in RetryableStatusCodes, or
// connection errors when RetryConnectionErrors is set, are retried. A
// server-supplied delay takes precedence over the computed backoff.
func (p *Policy) Decide(attempt int, err error) Decision {
	if attempt > p.cfg.MaxRetries {
		return Stop()
	}

	var classified ClassifiedError
	if !errors.As(err, &classified) {
		return Stop()
	}

	if classified.ConnectionError() {
		if !p.cfg.RetryConnectionErrors {
			return Stop()
		}
	} else if !p.cfg.RetryableStatusCodes[classified.HTTPStatus()] {
		return Stop()
	}

	delay := p.cfg.Delay(attempt)
	if server, ok := classified.ServerDelay(); ok && server > 0 {
		delay = server
	}
	return WaitThen(delay)
}
