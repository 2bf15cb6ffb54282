package griddy

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind is the classification tag for an API failure. Classification happens
// exactly once, at the invoker boundary; callers inspect the tag and never
// re-classify.
type Kind int

const (
	// KindUnauthorized covers 401/403 responses; the token is missing,
	// expired, or lacks access. Never retried.
	KindUnauthorized Kind = iota + 1
	// KindNotFound covers 404 responses. Never retried.
	KindNotFound
	// KindRateLimited covers 429 responses; RetryAfter carries the
	// server-supplied delay when present.
	KindRateLimited
	// KindServerError covers 5xx responses.
	KindServerError
	// KindNetworkError covers connection failures and per-request
	// timeouts where no response arrived.
	KindNetworkError
	// KindValidation covers response bodies that do not match the
	// expected shape, and unexpected 4xx statuses. Never retried.
	KindValidation
	// KindClientClosed is returned for calls made after Close.
	KindClientClosed
	// KindCancelled is returned when the caller's context ends
	// mid-request or mid-backoff.
	KindCancelled
	// KindNotInitialized is returned when the credential store holds no
	// token yet.
	KindNotInitialized
)

// String returns the tag name used in error messages and logs.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindRateLimited:
		return "rate limited"
	case KindServerError:
		return "server error"
	case KindNetworkError:
		return "network error"
	case KindValidation:
		return "validation error"
	case KindClientClosed:
		return "client closed"
	case KindCancelled:
		return "cancelled"
	case KindNotInitialized:
		return "credentials not initialized"
	default:
		return "unknown error"
	}
}

// APIError is the single error type surfaced by the client. It carries the
// classification tag, the HTTP status and raw body when a response was
// received, and the server's Retry-After for rate-limit responses so
// callers can apply their own backoff even after local retries are spent.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Body       []byte
	RetryAfter time.Duration

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString("griddy: ")
	b.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap exposes the underlying cause, if any.
func (e *APIError) Unwrap() error { return e.cause }

// HTTPStatus returns the response status code, or 0 when no response was
// received. Part of the retry policy's classification contract.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

// ConnectionError reports whether the failure happened before any response
// arrived.
func (e *APIError) ConnectionError() bool { return e.Kind == KindNetworkError }

// ServerDelay returns the server-supplied Retry-After, when present.
func (e *APIError) ServerDelay() (time.Duration, bool) {
	return e.RetryAfter, e.RetryAfter > 0
}

// IsUnauthorized reports whether err is an authentication failure.
func IsUnauthorized(err error) bool { return hasKind(err, KindUnauthorized) }

// IsNotFound reports whether err is a missing-resource failure.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsRateLimited reports whether err is a rate-limit rejection.
func IsRateLimited(err error) bool { return hasKind(err, KindRateLimited) }

// IsRetryable reports whether err belongs to a transient class that the
// client retries locally.
func IsRetryable(err error) bool {
	return hasKind(err, KindRateLimited) || hasKind(err, KindServerError) || hasKind(err, KindNetworkError)
}

// IsClientClosed reports whether err was caused by calling a closed client.
func IsClientClosed(err error) bool { return hasKind(err, KindClientClosed) }

func hasKind(err error, kind Kind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
