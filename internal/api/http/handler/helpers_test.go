package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/fintrack-web/internal/api/http/context"
	"github.com/dtroode/fintrack-web/internal/api/http/respond"
	"github.com/dtroode/fintrack-web/internal/mocks"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/session"
	"github.com/dtroode/fintrack-web/internal/storage/cookie"
	"github.com/dtroode/fintrack-web/internal/testutil"
)

// serveWithSession runs h with a cookie-bound session in the request context.
func serveWithSession(t *testing.T, h http.HandlerFunc, req *http.Request, exchanger session.Exchanger) *httptest.ResponseRecorder {
	t.Helper()

	if exchanger == nil {
		exchanger = mocks.NewExchanger(t)
	}

	lg := testutil.MakeNoopLogger()
	rec := httptest.NewRecorder()
	sessions := session.NewManager(mocks.NewHTTPClient(t), exchanger, lg)
	sess := sessions.Bind(cookie.New(rec, req, cookie.Options{}, lg))

	ctx := httpcontext.NewManager().SetSessionToContext(req.Context(), sess)
	h(rec, req.WithContext(ctx))
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func tokensCookie(t *testing.T, tokens model.AuthTokens) *http.Cookie {
	t.Helper()

	raw, err := cookie.Encode(tokens)
	require.NoError(t, err)
	return &http.Cookie{Name: model.TokensKey, Value: raw}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body respond.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}
