package session

import (
	"context"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
)

// Manager holds the process-wide pieces of the session core and binds them
// to a storage medium chosen by the caller's execution context.
type Manager struct {
	raw       model.HTTPClient
	exchanger Exchanger
	logger    *logger.Logger
}

// NewManager creates a Manager. raw must be the undecorated backend client.
func NewManager(raw model.HTTPClient, exchanger Exchanger, logger *logger.Logger) *Manager {
	return &Manager{raw: raw, exchanger: exchanger, logger: logger}
}

// Bind returns a Session over storage.
func (m *Manager) Bind(storage model.Storage, opts ...CoordinatorOption) *Session {
	store := NewStore(storage, m.logger)
	return &Session{
		store:       store,
		raw:         m.raw,
		client:      NewAuthorized(m.raw, store),
		coordinator: NewCoordinator(store, m.exchanger, m.logger, opts...),
		logger:      m.logger,
	}
}

// Session is the session core bound to one storage medium.
type Session struct {
	store       *Store
	raw         model.HTTPClient
	client      *Authorized
	coordinator *Coordinator
	logger      *logger.Logger
}

// Store returns the token store of this binding.
func (s *Session) Store() *Store {
	return s.store
}

// Client returns the bearer-decorated client.
func (s *Session) Client() model.HTTPClient {
	return s.client
}

// Raw returns the undecorated client for calls that must not carry a token.
func (s *Session) Raw() model.HTTPClient {
	return s.raw
}

func (s *Session) Refresh(ctx context.Context) (model.AuthTokens, error) {
	return s.coordinator.Refresh(ctx)
}

func (s *Session) Teardown(ctx context.Context) error {
	return s.coordinator.Teardown(ctx)
}

// Do runs call with the decorated client. A 401 triggers one refresh and
// one retry; a failed refresh returns an error wrapping model.ErrSessionExpired.
func (s *Session) Do(ctx context.Context, call func(ctx context.Context, client model.HTTPClient) error) error {
	err := call(ctx, s.client)
	if !model.IsUnauthorized(err) {
		return err
	}

	s.logger.Debug("Session: access token rejected, refreshing")
	if _, err := s.coordinator.Refresh(ctx); err != nil {
		return err
	}

	return call(ctx, s.client)
}
