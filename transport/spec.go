package transport

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RequestSpec describes one logical API request. A spec is built per call
// and never reused; the transport does not mutate it.
type RequestSpec struct {
	Method     string
	Path       string
	PathParams map[string]string
	Query      url.Values
	Headers    http.Header
	Body       any
	Timeout    time.Duration
}

// RawResponse is the uninterpreted outcome of a single request attempt.
// Status codes are classified by the caller, not here.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// expandPath substitutes {name} segments in the path with URL-escaped
// values from PathParams.
func (s *RequestSpec) expandPath() string {
	path := s.Path
	for name, value := range s.PathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	return path
}
