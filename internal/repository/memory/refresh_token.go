package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/fintrack-web/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]model.RefreshToken
	now    func() time.Time
}

func NewRefreshTokenRepository(now func() time.Time) *RefreshTokenRepository {
	if now == nil {
		now = time.Now
	}
	return &RefreshTokenRepository{
		tokens: make(map[string]model.RefreshToken),
		now:    now,
	}
}

func (r *RefreshTokenRepository) Create(_ context.Context, token model.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token.JTI] = token
	return nil
}

func (r *RefreshTokenRepository) GetByJTI(_ context.Context, jti string) (model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rt, ok := r.tokens[jti]
	if !ok {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return rt, nil
}

func (r *RefreshTokenRepository) RevokeByJTI(_ context.Context, jti string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rt, ok := r.tokens[jti]; ok && rt.RevokedAt == nil {
		r.tokens[jti] = r.revoke(rt)
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAllByUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for jti, rt := range r.tokens {
		if rt.UserID == userID && rt.RevokedAt == nil {
			r.tokens[jti] = r.revoke(rt)
		}
	}
	return nil
}

func (r *RefreshTokenRepository) revoke(rt model.RefreshToken) model.RefreshToken {
	now := r.now()
	rt.RevokedAt = &now
	return rt
}
