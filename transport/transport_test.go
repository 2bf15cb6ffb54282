package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPTransport(t *testing.T) {
	_, err := NewHTTPTransport("", nil, "")
	require.Error(t, err)

	tr, err := NewHTTPTransport("http://example.com/", nil, "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com", tr.baseURL, "trailing slash is dropped")
}

func TestSendBuildsRequest(t *testing.T) {
	var gotPath, gotQuery, gotAccept, gotAgent, gotCustom string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		gotCustom = r.Header.Get("X-Custom")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tr, err := NewHTTPTransport(server.URL, nil, "griddy-test")
	require.NoError(t, err)

	query := url.Values{}
	query.Set("season", "2025")

	headers := http.Header{}
	headers.Set("X-Custom", "value")

	resp, err := tr.Send(context.Background(), &RequestSpec{
		Method:     http.MethodGet,
		Path:       "/v1/games/{id}",
		PathParams: map[string]string{"id": "game/1"},
		Query:      query,
		Headers:    headers,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []byte(`{"ok":true}`), resp.Body)
	assert.Equal(t, "/v1/games/game%2F1", gotPath, "path params are escaped")
	assert.Equal(t, "season=2025", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "griddy-test", gotAgent)
	assert.Equal(t, "value", gotCustom)
}

func TestSendEncodesJSONBody(t *testing.T) {
	var gotBody []byte
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	tr, err := NewHTTPTransport(server.URL, nil, "")
	require.NoError(t, err)

	resp, err := tr.Send(context.Background(), &RequestSpec{
		Method: http.MethodPost,
		Path:   "/v1/things",
		Body:   map[string]string{"name": "value"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"name":"value"}`, string(gotBody))
	assert.Equal(t, "application/json", gotContentType)
}

// Non-2xx statuses pass through uninterpreted; classification is the
// invoker's job.
func TestSendDoesNotInterpretStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	tr, err := NewHTTPTransport(server.URL, nil, "")
	require.NoError(t, err)

	resp, err := tr.Send(context.Background(), &RequestSpec{
		Method: http.MethodGet,
		Path:   "/v1/broken",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, []byte("boom"), resp.Body)
}

func TestSendAppliesPerCallTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	tr, err := NewHTTPTransport(server.URL, nil, "")
	require.NoError(t, err)

	_, err = tr.Send(context.Background(), &RequestSpec{
		Method:  http.MethodGet,
		Path:    "/v1/slow",
		Timeout: 20 * time.Millisecond,
	})
	require.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	tr, err := NewHTTPTransport("http://example.com", nil, "")
	require.NoError(t, err)

	tr.Close()
	tr.Close()
}
