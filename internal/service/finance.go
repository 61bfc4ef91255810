package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/session"
)

// Finance reads the finance views of the signed-in user. Payloads are passed
// through to the pages unchanged.
type Finance struct {
	logger *logger.Logger
}

func NewFinance(logger *logger.Logger) *Finance {
	return &Finance{logger: logger}
}

func (f *Finance) Summary(ctx context.Context, sess *session.Session) (json.RawMessage, error) {
	return f.fetch(ctx, sess, "/summary", nil)
}

func (f *Finance) Entries(ctx context.Context, sess *session.Session, query url.Values) (json.RawMessage, error) {
	return f.fetch(ctx, sess, "/entries", query)
}

func (f *Finance) Forecast(ctx context.Context, sess *session.Session, query url.Values) (json.RawMessage, error) {
	return f.fetch(ctx, sess, "/forecast", query)
}

func (f *Finance) fetch(ctx context.Context, sess *session.Session, path string, query url.Values) (json.RawMessage, error) {
	var cfg *model.RequestConfig
	if len(query) > 0 {
		cfg = &model.RequestConfig{Query: query}
	}

	var payload json.RawMessage
	err := sess.Do(ctx, func(ctx context.Context, client model.HTTPClient) error {
		return client.Get(ctx, path, &payload, cfg)
	})
	if err != nil {
		f.logger.Debug("Finance service: fetch failed",
			"path", path,
			"error", err.Error())
		return nil, fmt.Errorf("failed to get %s: %w", path, err)
	}
	return payload, nil
}
