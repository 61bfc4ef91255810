package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
)

const maxResponseBytes = 2 * 1024 * 1024

var _ model.HTTPClient = (*Client)(nil)

// Client is a JSON client for the remote finance API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// New creates a Client for baseURL. A non-positive timeout falls back to 10 seconds.
func New(baseURL string, timeout time.Duration, logger *logger.Logger) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse backend url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid backend url: %q", baseURL)
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, out any, cfg *model.RequestConfig) error {
	return c.do(ctx, http.MethodGet, path, nil, out, cfg)
}

func (c *Client) Post(ctx context.Context, path string, body, out any, cfg *model.RequestConfig) error {
	return c.do(ctx, http.MethodPost, path, body, out, cfg)
}

func (c *Client) Put(ctx context.Context, path string, body, out any, cfg *model.RequestConfig) error {
	return c.do(ctx, http.MethodPut, path, body, out, cfg)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any, cfg *model.RequestConfig) error {
	return c.do(ctx, http.MethodPatch, path, body, out, cfg)
}

func (c *Client) Delete(ctx context.Context, path string, out any, cfg *model.RequestConfig) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, cfg)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, cfg *model.RequestConfig) error {
	fullURL := c.baseURL + ensureLeadingSlash(path)
	if cfg != nil && len(cfg.Query) > 0 {
		fullURL += "?" + cfg.Query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if cfg != nil {
		for key, values := range cfg.Headers {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("HTTP client: request failed",
			"method", method,
			"path", path,
			"error", err.Error())
		return fmt.Errorf("failed to execute %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("HTTP client: request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &model.StatusError{
			Method:     method,
			URL:        path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func ensureLeadingSlash(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "/"
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	return "/" + trimmed
}
