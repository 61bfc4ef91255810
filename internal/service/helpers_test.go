package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dtroode/fintrack-web/internal/mocks"
	"github.com/dtroode/fintrack-web/internal/session"
	"github.com/dtroode/fintrack-web/internal/storage/cookie"
	"github.com/dtroode/fintrack-web/internal/testutil"
)

func newSession(t *testing.T) (*session.Session, *mocks.HTTPClient, *mocks.Exchanger) {
	t.Helper()

	raw := mocks.NewHTTPClient(t)
	exchanger := mocks.NewExchanger(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	storage := cookie.New(cookie.Track(httptest.NewRecorder()), r, cookie.Options{}, testutil.MakeNoopLogger())

	manager := session.NewManager(raw, exchanger, testutil.MakeNoopLogger())
	return manager.Bind(storage), raw, exchanger
}
