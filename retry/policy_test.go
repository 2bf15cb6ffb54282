package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// classifiedErr is a minimal ClassifiedError for exercising the policy.
type classifiedErr struct {
	status     int
	connFail   bool
	retryAfter time.Duration
}

func (e *classifiedErr) Error() string        { return "classified test error" }
func (e *classifiedErr) HTTPStatus() int      { return e.status }
func (e *classifiedErr) ConnectionError() bool { return e.connFail }
func (e *classifiedErr) ServerDelay() (time.Duration, bool) {
	return e.retryAfter, e.retryAfter > 0
}

func testConfig(maxRetries int) Config {
	return Config{
		MaxRetries:        maxRetries,
		InitialDelay:      100 * time.Millisecond,
		MaxDelay:          time.Second,
		BackoffMultiplier: 2,
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

func TestPolicyRetriesTransientStatuses(t *testing.T) {
	policy := NewPolicy(testConfig(3))

	for _, status := range []int{429, 500, 502, 503, 504} {
		decision := policy.Decide(1, &classifiedErr{status: status})
		assert.True(t, decision.Retry, "status %d should be retried", status)
		assert.Equal(t, 100*time.Millisecond, decision.Delay)
	}
}

func TestPolicyStopsOnNonRetryableStatuses(t *testing.T) {
	policy := NewPolicy(testConfig(5))

	for _, status := range []int{400, 401, 403, 404, 422} {
		decision := policy.Decide(1, &classifiedErr{status: status})
		assert.False(t, decision.Retry, "status %d must not be retried", status)
	}
}

func TestPolicyMaxRetriesZeroAlwaysStops(t *testing.T) {
	policy := NewPolicy(testConfig(0))

	decision := policy.Decide(1, &classifiedErr{status: 500})
	assert.False(t, decision.Retry)
}

func TestPolicyStopsAfterMaxRetries(t *testing.T) {
	policy := NewPolicy(testConfig(3))

	err := &classifiedErr{status: 500}
	assert.True(t, policy.Decide(1, err).Retry)
	assert.True(t, policy.Decide(2, err).Retry)
	assert.True(t, policy.Decide(3, err).Retry)
	assert.False(t, policy.Decide(4, err).Retry)
}

func TestPolicyBackoffGrowsPerAttempt(t *testing.T) {
	policy := NewPolicy(testConfig(5))
	err := &classifiedErr{status: 503}

	assert.Equal(t, 100*time.Millisecond, policy.Decide(1, err).Delay)
	assert.Equal(t, 200*time.Millisecond, policy.Decide(2, err).Delay)
	assert.Equal(t, 400*time.Millisecond, policy.Decide(3, err).Delay)
}

func TestPolicyServerDelayTakesPrecedence(t *testing.T) {
	policy := NewPolicy(testConfig(3))

	decision := policy.Decide(2, &classifiedErr{status: 429, retryAfter: 5 * time.Second})
	assert.True(t, decision.Retry)
	assert.Equal(t, 5*time.Second, decision.Delay, "server-supplied delay overrides computed backoff")
}

func TestPolicyConnectionErrors(t *testing.T) {
	connErr := &classifiedErr{connFail: true}

	policy := NewPolicy(testConfig(3))
	assert.True(t, policy.Decide(1, connErr).Retry)

	cfg := testConfig(3)
	cfg.RetryConnectionErrors = false
	policy = NewPolicy(cfg)
	assert.False(t, policy.Decide(1, connErr).Retry)
}

func TestPolicyUnclassifiedErrorStops(t *testing.T) {
	policy := NewPolicy(testConfig(3))

	decision := policy.Decide(1, errors.New("plain error"))
	assert.False(t, decision.Retry)
}

func TestPolicyFindsWrappedClassification(t *testing.T) {
	policy := NewPolicy(testConfig(3))

	wrapped := errorsJoin(&classifiedErr{status: 500})
	assert.True(t, policy.Decide(1, wrapped).Retry)
}

func errorsJoin(err error) error {
	return &wrapErr{err}
}

type wrapErr struct{ inner error }

func (w *wrapErr) Error() string { return "wrapped: " + w.inner.Error() }
func (w *wrapErr) Unwrap() error { return w.inner }
