package devapi

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
)

// TokenIssuer is the token manager used by TokenService.
type TokenIssuer interface {
	model.TokenManager
	RefreshTTL() time.Duration
}

// TokenService issues, rotates and revokes token pairs. It composes the
// token manager and the refresh token store.
type TokenService struct {
	manager TokenIssuer
	store   model.RefreshTokenStore
	now     func() time.Time
	logger  *logger.Logger
}

func NewTokenService(manager TokenIssuer, store model.RefreshTokenStore, now func() time.Time, logger *logger.Logger) *TokenService {
	if now == nil {
		now = time.Now
	}
	return &TokenService{manager: manager, store: store, now: now, logger: logger}
}

func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (model.AuthTokens, error) {
	return s.issue(ctx, userID, nil)
}

// Refresh validates the presented refresh token, revokes it and issues a new pair.
func (s *TokenService) Refresh(ctx context.Context, presented string) (model.AuthTokens, error) {
	userID, jti, err := s.manager.ParseRefreshToken(presented)
	if err != nil {
		return model.AuthTokens{}, err
	}

	rt, err := s.store.GetByJTI(ctx, jti)
	if err != nil {
		return model.AuthTokens{}, err
	}

	if err := validateRecord(rt, hashRefresh(presented), s.now()); err != nil {
		s.logger.Info("Token service: refresh refused",
			"user_id", userID,
			"jti", jti,
			"error", err.Error())
		return model.AuthTokens{}, err
	}

	if err := s.store.RevokeByJTI(ctx, jti); err != nil {
		return model.AuthTokens{}, fmt.Errorf("failed to revoke old refresh token: %w", err)
	}

	return s.issue(ctx, userID, &rt.JTI)
}

func (s *TokenService) RevokeByToken(ctx context.Context, presented string) error {
	_, jti, err := s.manager.ParseRefreshToken(presented)
	if err != nil {
		return err
	}
	return s.store.RevokeByJTI(ctx, jti)
}

func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.store.RevokeAllByUser(ctx, userID)
}

func (s *TokenService) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	return s.manager.ParseAccessToken(token)
}

func (s *TokenService) issue(ctx context.Context, userID uuid.UUID, rotatedFrom *string) (model.AuthTokens, error) {
	access, expiresIn, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return model.AuthTokens{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, jti, err := s.manager.GenerateRefreshToken(userID)
	if err != nil {
		return model.AuthTokens{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	now := s.now()
	rt := model.RefreshToken{
		JTI:            jti,
		UserID:         userID,
		TokenHash:      hashRefresh(refresh),
		IssuedAt:       now,
		ExpiresAt:      now.Add(s.manager.RefreshTTL()),
		RotatedFromJTI: rotatedFrom,
	}
	if err := s.store.Create(ctx, rt); err != nil {
		return model.AuthTokens{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return model.AuthTokens{AccessToken: access, RefreshToken: refresh, ExpiresIn: expiresIn}, nil
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func validateRecord(rt model.RefreshToken, presentedHash []byte, now time.Time) error {
	if rt.RevokedAt != nil {
		return model.ErrTokenRevoked
	}
	if now.After(rt.ExpiresAt) {
		return model.ErrTokenExpired
	}
	if subtle.ConstantTimeCompare(rt.TokenHash, presentedHash) != 1 {
		return model.ErrTokenMismatch
	}
	return nil
}
