package respond

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IncludesRequestID(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), middleware.RequestIDKey, "req-1"))
	w := httptest.NewRecorder()

	Error(w, r, http.StatusUnauthorized, "unauthenticated", "missing token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, APIError{Code: "unauthenticated", Message: "missing token", RequestID: "req-1"}, body.Error)
}

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"email":"a@b.com"}`},
		{name: "unknown field", body: `{"email":"a@b.com","admin":true}`, wantErr: true},
		{name: "trailing data", body: `{"email":"a@b.com"}{}`, wantErr: true},
		{name: "not json", body: `email=a`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var in struct {
				Email string `json:"email"`
			}
			err := DecodeStrict(r, &in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a@b.com", in.Email)
		})
	}
}

func TestWantsJSON(t *testing.T) {
	t.Parallel()

	for ct, want := range map[string]bool{
		"":                                  false,
		"application/x-www-form-urlencoded": false,
		"application/json":                  true,
		"application/json; charset=utf-8":   true,
	} {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		if ct != "" {
			r.Header.Set("Content-Type", ct)
		}
		assert.Equal(t, want, WantsJSON(r), ct)
	}
}
