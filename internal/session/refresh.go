package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
)

// RefreshPath is the backend endpoint exchanging a refresh token.
const RefreshPath = "/auth/refresh"

// RotationGrace is how long a completed exchange is replayed to callers still
// holding the old refresh token. Requests that left the browser before the
// rotated cookie arrived would otherwise present a revoked token.
const RotationGrace = 10 * time.Second

// Exchanger trades a refresh token for a new token pair.
type Exchanger interface {
	Exchange(ctx context.Context, refreshToken string) (model.AuthTokens, error)
}

var _ Exchanger = (*Refresher)(nil)

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type exchangeResult struct {
	tokens    model.AuthTokens
	expiresAt time.Time
}

// Refresher calls the refresh endpoint through an undecorated client.
// Concurrent exchanges of the same refresh token share one backend call, and
// a successful result is reused for RotationGrace.
type Refresher struct {
	client model.HTTPClient
	group  singleflight.Group
	now    func() time.Time
	logger *logger.Logger

	mu     sync.Mutex
	recent map[string]exchangeResult
}

func NewRefresher(client model.HTTPClient, logger *logger.Logger) *Refresher {
	return &Refresher{
		client: client,
		now:    time.Now,
		logger: logger,
		recent: make(map[string]exchangeResult),
	}
}

func (r *Refresher) Exchange(ctx context.Context, refreshToken string) (model.AuthTokens, error) {
	key := digest(refreshToken)

	if tokens, ok := r.lookup(key); ok {
		r.logger.Debug("Refresher: reusing recent exchange", "key", key[:12])
		return tokens, nil
	}

	// The shared call must outlive any single waiter.
	callCtx := context.WithoutCancel(ctx)
	ch := r.group.DoChan(key, func() (any, error) {
		var tokens model.AuthTokens
		err := r.client.Post(callCtx, RefreshPath, refreshRequest{RefreshToken: refreshToken}, &tokens, nil)
		if err != nil {
			return model.AuthTokens{}, err
		}
		r.remember(key, tokens)
		return tokens, nil
	})

	select {
	case <-ctx.Done():
		return model.AuthTokens{}, ctx.Err()
	case res := <-ch:
		if res.Shared {
			r.logger.Debug("Refresher: joined in-flight refresh", "key", key[:12])
		}
		if res.Err != nil {
			return model.AuthTokens{}, fmt.Errorf("failed to exchange refresh token: %w", res.Err)
		}
		return res.Val.(model.AuthTokens), nil
	}
}

func (r *Refresher) lookup(key string) (model.AuthTokens, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.recent[key]
	if !ok || !r.now().Before(res.expiresAt) {
		return model.AuthTokens{}, false
	}
	return res.tokens, true
}

func (r *Refresher) remember(key string, tokens model.AuthTokens) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for k, res := range r.recent {
		if !now.Before(res.expiresAt) {
			delete(r.recent, k)
		}
	}
	r.recent[key] = exchangeResult{tokens: tokens, expiresAt: now.Add(RotationGrace)}
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithTeardownHook registers fn to run after every teardown.
func WithTeardownHook(fn func(ctx context.Context)) CoordinatorOption {
	return func(c *Coordinator) {
		c.onTeardown = fn
	}
}

// Coordinator recovers an access token for one storage binding, or ends the session.
type Coordinator struct {
	store      *Store
	exchanger  Exchanger
	logger     *logger.Logger
	onTeardown func(ctx context.Context)
}

func NewCoordinator(store *Store, exchanger Exchanger, logger *logger.Logger, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{store: store, exchanger: exchanger, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh exchanges the stored refresh token and persists the result.
// Any failure other than ctx cancellation tears the session down and
// returns an error wrapping model.ErrSessionExpired.
func (c *Coordinator) Refresh(ctx context.Context) (model.AuthTokens, error) {
	current := c.store.Tokens(ctx)
	if !current.HasRefresh() {
		c.logger.Info("Refresh coordinator: no refresh token, ending session")
		c.teardown(ctx)
		return model.AuthTokens{}, model.ErrSessionExpired
	}

	fresh, err := c.exchanger.Exchange(ctx, current.RefreshToken)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return model.AuthTokens{}, err
		}
		c.logger.Info("Refresh coordinator: refresh rejected, ending session",
			"status", model.StatusCodeOf(err),
			"error", err.Error())
		c.teardown(ctx)
		return model.AuthTokens{}, fmt.Errorf("%w: %w", model.ErrSessionExpired, err)
	}
	if !fresh.HasAccess() {
		c.logger.Warn("Refresh coordinator: refresh response without access token, ending session")
		c.teardown(ctx)
		return model.AuthTokens{}, model.ErrSessionExpired
	}

	if !fresh.HasRefresh() {
		fresh.RefreshToken = current.RefreshToken
	}
	fresh = fresh.Normalize()

	if _, err := c.store.SetTokens(ctx, fresh); err != nil {
		c.logger.Error("Refresh coordinator: failed to persist tokens", "error", err.Error())
	}

	c.logger.Debug("Refresh coordinator: access token refreshed",
		"rotated", fresh.RefreshToken != current.RefreshToken)

	return fresh, nil
}

// Teardown clears the session. It is safe to call without a session.
func (c *Coordinator) Teardown(ctx context.Context) error {
	return c.teardown(ctx)
}

func (c *Coordinator) teardown(ctx context.Context) error {
	_, tokensErr := c.store.ClearTokens(ctx)
	_, userErr := c.store.ClearUser(ctx)

	if c.onTeardown != nil {
		c.onTeardown(ctx)
	}

	if err := errors.Join(tokensErr, userErr); err != nil {
		c.logger.Error("Refresh coordinator: teardown incomplete", "error", err.Error())
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
