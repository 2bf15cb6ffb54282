// Package transport issues single HTTP request attempts. It owns the
// connection pool but no retry, credential, or classification logic; those
// belong to the layers above it.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const defaultTimeout = 30 * time.Second

// Transport performs exactly one request attempt per Send call.
// Implementations must tolerate concurrent Send calls.
type Transport interface {
	Send(ctx context.Context, spec *RequestSpec) (*RawResponse, error)
}

// HTTPTransport is the production Transport over net/http. All Send calls
// share one pooled http.Client; each call owns its own request and
// response lifecycle.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewHTTPTransport creates a transport for the given base URL. A trailing
// slash on the base URL is dropped so specs can use absolute paths.
func NewHTTPTransport(baseURL string, httpClient *http.Client, userAgent string) (*HTTPTransport, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPTransport{
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  userAgent,
	}, nil
}

// Send issues the request described by spec and returns the raw response.
// The per-call timeout comes from the spec; the caller's context still
// governs cancellation. Errors are returned unclassified.
func (t *HTTPTransport) Send(ctx context.Context, spec *RequestSpec) (*RawResponse, error) {
	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := t.baseURL + spec.expandPath()
	if len(spec.Query) > 0 {
		url += "?" + spec.Query.Encode()
	}

	var body io.Reader
	if spec.Body != nil {
		encoded, err := json.Marshal(spec.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if spec.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	for name, values := range spec.Headers {
		for _, v := range values {
			req.Header.Set(name, v)
		}
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}

// Close releases idle pooled connections. Calling it more than once is
// harmless.
func (t *HTTPTransport) Close() {
	t.httpClient.CloseIdleConnections()
}
