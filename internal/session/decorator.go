package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/fintrack-web/internal/model"
)

// TokenSource supplies the current access token.
type TokenSource interface {
	GetAccessToken(ctx context.Context) (string, bool)
}

var _ model.HTTPClient = (*Authorized)(nil)

// Authorized adds bearer authentication to every call of the wrapped client.
// It only reads tokens; refreshing is up to the caller.
type Authorized struct {
	next   model.HTTPClient
	tokens TokenSource
}

func NewAuthorized(next model.HTTPClient, tokens TokenSource) *Authorized {
	return &Authorized{next: next, tokens: tokens}
}

func (a *Authorized) Get(ctx context.Context, path string, out any, cfg *model.RequestConfig) error {
	return a.next.Get(ctx, path, out, a.decorate(ctx, cfg))
}

func (a *Authorized) Post(ctx context.Context, path string, body, out any, cfg *model.RequestConfig) error {
	return a.next.Post(ctx, path, body, out, a.decorate(ctx, cfg))
}

func (a *Authorized) Put(ctx context.Context, path string, body, out any, cfg *model.RequestConfig) error {
	return a.next.Put(ctx, path, body, out, a.decorate(ctx, cfg))
}

func (a *Authorized) Patch(ctx context.Context, path string, body, out any, cfg *model.RequestConfig) error {
	return a.next.Patch(ctx, path, body, out, a.decorate(ctx, cfg))
}

func (a *Authorized) Delete(ctx context.Context, path string, out any, cfg *model.RequestConfig) error {
	return a.next.Delete(ctx, path, out, a.decorate(ctx, cfg))
}

// decorate returns cfg itself when there is no access token. Otherwise it
// returns a copy whose headers carry exactly one Authorization value.
func (a *Authorized) decorate(ctx context.Context, cfg *model.RequestConfig) *model.RequestConfig {
	token, ok := a.tokens.GetAccessToken(ctx)
	if !ok {
		return cfg
	}

	out := &model.RequestConfig{Headers: http.Header{}}
	if cfg != nil {
		out.Query = cfg.Query
		for key, values := range cfg.Headers {
			if strings.EqualFold(key, "Authorization") {
				continue
			}
			out.Headers[key] = append([]string(nil), values...)
		}
	}
	out.Headers.Set("Authorization", "Bearer "+token)

	return out
}
