package griddy

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/johngriebel/griddy-go/retry"
	"github.com/johngriebel/griddy-go/transport"
)

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	timeout    time.Duration
	retryCfg   retry.Config
	transport  transport.Transport
	httpClient *http.Client
	userAgent  string
	clock      retry.Clock
	logger     zerolog.Logger
}

// WithTimeout sets the per-request timeout applied to every call. The
// timeout covers a single attempt, not the whole retry loop; supply a
// context deadline to bound total elapsed time.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryConfig replaces the default retry configuration.
func WithRetryConfig(cfg retry.Config) Option {
	return func(o *clientOptions) {
		o.retryCfg = cfg
	}
}

// WithTransport substitutes the transport, mainly for tests. The client
// does not manage the lifecycle of a substituted transport.
func WithTransport(t transport.Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// WithHTTPClient supplies a custom http.Client for connection pooling or
// TLS settings.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithClock substitutes the clock driving backoff waits, for tests.
func WithClock(clock retry.Clock) Option {
	return func(o *clientOptions) {
		o.clock = clock
	}
}

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
