package context

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/session"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	sessionKey
)

var _ model.ContextManager = (*Manager)(nil)

// Manager stores request-scoped values in a request context.
// It carries the authenticated user ID on the backend side and the bound
// session on the web side.
type Manager struct{}

// NewManager creates a new context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a copy of ctx carrying userID.
//
// Parameters:
//   - ctx: The request context
//   - userID: The user UUID to set in the context
//
// Returns a new context with the user ID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the user ID set by SetUserIDToContext.
//
// Parameters:
//   - ctx: The request context
//
// Returns the user UUID and a boolean indicating if a non-nil user ID was found.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// SetSessionToContext returns a copy of ctx carrying the session bound to the request.
func (m *Manager) SetSessionToContext(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSessionFromContext retrieves the session bound to the request.
//
// Returns the session and a boolean indicating if it was found.
func (m *Manager) GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok && sess != nil
}
