package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/storage/cookie"
	"github.com/dtroode/fintrack-web/internal/storage/local"
	"github.com/dtroode/fintrack-web/internal/testutil"
)

type binding struct {
	name string
	open func(t *testing.T) model.Storage
}

var bindings = []binding{
	{name: "cookie", open: func(t *testing.T) model.Storage { return newCookieStorage(t) }},
	{name: "local", open: newLocalStorage},
}

func newCookieStorage(t *testing.T, cookies ...*http.Cookie) *cookie.Storage {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := cookie.Track(httptest.NewRecorder())
	return cookie.New(w, r, cookie.Options{}, testutil.MakeNoopLogger())
}

func newLocalStorage(t *testing.T) model.Storage {
	t.Helper()

	s, err := local.OpenTemp()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func encoded(t *testing.T, v any) string {
	t.Helper()

	raw, err := cookie.Encode(v)
	require.NoError(t, err)
	return raw
}
