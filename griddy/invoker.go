package griddy

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/johngriebel/griddy-go/auth"
	"github.com/johngriebel/griddy-go/retry"
	"github.com/johngriebel/griddy-go/transport"
)

// invoker executes one logical API call: it injects credentials, drives the
// attempt loop against the transport, classifies failures, and parses the
// successful response body.
type invoker struct {
	transport transport.Transport
	store     *auth.Store
	policy    *retry.Policy
	clock     retry.Clock
	logger    zerolog.Logger
}

// do runs the retried call described by spec, decoding a 2xx body into out
// when out is non-nil. The error returned always reflects the last
// attempt's classification.
func (inv *invoker) do(ctx context.Context, spec *transport.RequestSpec, out any) error {
	creds, err := inv.store.Get()
	if err != nil {
		return &APIError{Kind: KindNotInitialized, Message: err.Error(), cause: err}
	}

	if spec.Headers == nil {
		spec.Headers = http.Header{}
	}
	spec.Headers.Set("Authorization", "Bearer "+creds.AccessToken)

	maxAttempts := inv.policy.Config().MaxRetries + 1
	var lastErr *APIError

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, sendErr := inv.transport.Send(ctx, spec)

		switch {
		case sendErr != nil:
			lastErr = inv.classifySendError(ctx, sendErr)
			if lastErr.Kind == KindCancelled {
				return lastErr
			}
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return decodeBody(resp, out)
		default:
			lastErr = classifyStatus(resp)
		}

		decision := inv.policy.Decide(attempt, lastErr)
		if !decision.Retry {
			break
		}

		inv.logger.Debug().
			Int("attempt", attempt).
			Dur("delay", decision.Delay).
			Str("method", spec.Method).
			Str("path", spec.Path).
			Str("error", lastErr.Kind.String()).
			Msg("Retrying request")

		timer := inv.clock.NewTimer(decision.Delay)
		select {
		case <-timer.C():
		case <-ctx.Done():
			timer.Stop()
			return &APIError{Kind: KindCancelled, Message: ctx.Err().Error(), cause: ctx.Err()}
		}
	}

	return lastErr
}

// decodeBody parses a successful response into out. A body that does not
// match the expected shape is a ValidationError and is never retried;
// another attempt cannot fix a schema mismatch.
func decodeBody(resp *transport.RawResponse, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &APIError{
			Kind:       KindValidation,
			StatusCode: resp.StatusCode,
			Message:    "response body does not match expected shape: " + err.Error(),
			Body:       resp.Body,
			cause:      err,
		}
	}
	if n, ok := out.(normalizer); ok {
		n.normalize()
	}
	return nil
}

// normalizer is implemented by response types with optional fields that
// take defined defaults at parse time.
type normalizer interface {
	normalize()
}

// classifySendError maps a transport failure to Cancelled or NetworkError.
// A per-request timeout counts as a network error; only the caller's own
// context ending is a cancellation.
func (inv *invoker) classifySendError(ctx context.Context, err error) *APIError {
	if ctx.Err() != nil {
		return &APIError{Kind: KindCancelled, Message: ctx.Err().Error(), cause: ctx.Err()}
	}
	if errors.Is(err, context.Canceled) {
		return &APIError{Kind: KindCancelled, Message: err.Error(), cause: err}
	}
	return &APIError{Kind: KindNetworkError, Message: err.Error(), cause: err}
}

// classifyStatus maps a non-2xx response to the error taxonomy.
func classifyStatus(resp *transport.RawResponse) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    extractMessage(resp.Body),
		Body:       resp.Body,
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		apiErr.Kind = KindUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimited
		apiErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
	case resp.StatusCode >= 500:
		apiErr.Kind = KindServerError
	default:
		apiErr.Kind = KindValidation
	}
	return apiErr
}

// extractMessage pulls a human-readable message out of a JSON error body,
// falling back to the raw text.
func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	const maxRawMessage = 200
	msg := string(body)
	if len(msg) > maxRawMessage {
		msg = msg[:maxRawMessage]
	}
	return msg
}

// parseRetryAfter handles both delta-seconds and HTTP-date forms of the
// Retry-After header. Returns 0 when the header is absent or malformed.
func parseRetryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
