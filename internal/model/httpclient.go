package model

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// RequestConfig carries per-call options for an HTTPClient.
type RequestConfig struct {
	Headers http.Header
	Query   url.Values
}

// HTTPClient performs JSON calls against the remote API.
// out may be nil when the response body is not needed.
type HTTPClient interface {
	Get(ctx context.Context, path string, out any, cfg *RequestConfig) error
	Post(ctx context.Context, path string, body, out any, cfg *RequestConfig) error
	Put(ctx context.Context, path string, body, out any, cfg *RequestConfig) error
	Patch(ctx context.Context, path string, body, out any, cfg *RequestConfig) error
	Delete(ctx context.Context, path string, out any, cfg *RequestConfig) error
}

// StatusError is returned by an HTTPClient for any non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
}

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	return StatusCodeOf(err) == http.StatusUnauthorized
}
