package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/testutil"
)

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "localhost", "://bad"} {
		_, err := New(raw, time.Second, testutil.MakeNoopLogger())
		assert.Error(t, err, raw)
	}
}

func TestClient_VerbsSendJSONAndHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		call   func(c *Client, out any, cfg *model.RequestConfig) error
		body   bool
	}{
		{name: "get", method: http.MethodGet, call: func(c *Client, out any, cfg *model.RequestConfig) error {
			return c.Get(context.Background(), "/items", out, cfg)
		}},
		{name: "post", method: http.MethodPost, body: true, call: func(c *Client, out any, cfg *model.RequestConfig) error {
			return c.Post(context.Background(), "items", map[string]string{"k": "v"}, out, cfg)
		}},
		{name: "put", method: http.MethodPut, body: true, call: func(c *Client, out any, cfg *model.RequestConfig) error {
			return c.Put(context.Background(), "/items", map[string]string{"k": "v"}, out, cfg)
		}},
		{name: "patch", method: http.MethodPatch, body: true, call: func(c *Client, out any, cfg *model.RequestConfig) error {
			return c.Patch(context.Background(), "/items", map[string]string{"k": "v"}, out, cfg)
		}},
		{name: "delete", method: http.MethodDelete, call: func(c *Client, out any, cfg *model.RequestConfig) error {
			return c.Delete(context.Background(), "/items", out, cfg)
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, "/items", r.URL.Path)
				assert.Equal(t, "2", r.URL.Query().Get("page"))
				assert.Equal(t, "trace-1", r.Header.Get("X-Trace"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))

				if tt.body {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					raw, _ := io.ReadAll(r.Body)
					assert.JSONEq(t, `{"k":"v"}`, string(raw))
				}

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			defer server.Close()

			c, err := New(server.URL+"/", time.Second, testutil.MakeNoopLogger())
			require.NoError(t, err)

			var out struct {
				OK bool `json:"ok"`
			}
			cfg := &model.RequestConfig{
				Headers: http.Header{"X-Trace": []string{"trace-1"}},
				Query:   url.Values{"page": []string{"2"}},
			}
			require.NoError(t, tt.call(c, &out, cfg))
			assert.True(t, out.OK)
		})
	}
}

func TestClient_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		unauthorized bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, unauthorized: true},
		{name: "forbidden", status: http.StatusForbidden},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(" nope \n"))
			}))
			defer server.Close()

			c, err := New(server.URL, time.Second, testutil.MakeNoopLogger())
			require.NoError(t, err)

			err = c.Get(context.Background(), "/x", nil, nil)
			require.Error(t, err)

			var statusErr *model.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, "nope", statusErr.Body)
			assert.Equal(t, tt.unauthorized, model.IsUnauthorized(err))
		})
	}
}

func TestClient_EmptyBodyAndNilOut(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c, err := New(server.URL, time.Second, testutil.MakeNoopLogger())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, c.Delete(context.Background(), "/x", &out, nil))
	assert.Nil(t, out)
	require.NoError(t, c.Post(context.Background(), "/x", nil, nil, nil))
}

func TestClient_DecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	c, err := New(server.URL, time.Second, testutil.MakeNoopLogger())
	require.NoError(t, err)

	var out map[string]any
	err = c.Get(context.Background(), "/x", &out, nil)
	require.Error(t, err)
	assert.Zero(t, model.StatusCodeOf(err))
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c, err := New(server.URL, time.Second, testutil.MakeNoopLogger())
	require.NoError(t, err)

	err = c.Get(context.Background(), "/x", nil, nil)
	require.Error(t, err)
	assert.False(t, model.IsUnauthorized(err))
}

func TestStatusError_Message(t *testing.T) {
	t.Parallel()

	err := &model.StatusError{Method: http.MethodGet, URL: "/x", StatusCode: 401}
	assert.Equal(t, "GET /x: status 401", err.Error())

	raw, _ := json.Marshal(map[string]string{"e": "x"})
	err.Body = string(raw)
	assert.Contains(t, err.Error(), `{"e":"x"}`)
}
