package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
)

// Store is the typed token store over one Storage binding.
//
// The composite tokens key is the persisted record. Discrete accessToken and
// refreshToken keys are read as a fallback and removed on ClearTokens.
type Store struct {
	storage model.Storage
	logger  *logger.Logger
}

func NewStore(storage model.Storage, logger *logger.Logger) *Store {
	return &Store{storage: storage, logger: logger}
}

// Tokens returns the current pair. Missing or unreadable values yield empty fields.
func (s *Store) Tokens(ctx context.Context) model.AuthTokens {
	var tokens model.AuthTokens
	if s.storage.Get(ctx, model.TokensKey, &tokens) {
		return tokens.Normalize()
	}

	var access, refresh string
	s.storage.Get(ctx, model.AccessTokenKey, &access)
	s.storage.Get(ctx, model.RefreshTokenKey, &refresh)
	return model.AuthTokens{AccessToken: access, RefreshToken: refresh}
}

func (s *Store) GetAccessToken(ctx context.Context) (string, bool) {
	t := s.Tokens(ctx)
	return t.AccessToken, t.HasAccess()
}

func (s *Store) GetRefreshToken(ctx context.Context) (string, bool) {
	t := s.Tokens(ctx)
	return t.RefreshToken, t.HasRefresh()
}

// SetAccessToken replaces the access token and keeps the refresh token.
func (s *Store) SetAccessToken(ctx context.Context, token string) (model.WriteResult, error) {
	t := s.Tokens(ctx)
	t.AccessToken = token
	return s.SetTokens(ctx, t)
}

// SetRefreshToken replaces the refresh token and keeps the access token.
func (s *Store) SetRefreshToken(ctx context.Context, token string) (model.WriteResult, error) {
	t := s.Tokens(ctx)
	t.RefreshToken = token
	return s.SetTokens(ctx, t)
}

// SetTokens writes the pair as one record.
func (s *Store) SetTokens(ctx context.Context, tokens model.AuthTokens) (model.WriteResult, error) {
	res, err := s.storage.Set(ctx, model.TokensKey, tokens.Normalize())
	if err != nil {
		return res, fmt.Errorf("failed to write tokens: %w", err)
	}
	if res == model.WriteDegraded {
		s.logger.Warn("Token store: tokens not persisted")
	}
	return res, nil
}

// ClearTokens removes every token key, including unreadable ones.
func (s *Store) ClearTokens(ctx context.Context) (model.WriteResult, error) {
	result := model.WriteApplied
	var errs []error

	for _, key := range []string{model.TokensKey, model.AccessTokenKey, model.RefreshTokenKey} {
		res, err := s.storage.Delete(ctx, key)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", key, err))
		}
		if res == model.WriteDegraded {
			result = model.WriteDegraded
		}
	}

	return result, errors.Join(errs...)
}

// User returns the cached profile summary.
func (s *Store) User(ctx context.Context) (model.User, bool) {
	var user model.User
	if !s.storage.Get(ctx, model.UserKey, &user) || user.ID == "" {
		return model.User{}, false
	}
	return user, true
}

func (s *Store) SetUser(ctx context.Context, user model.User) (model.WriteResult, error) {
	res, err := s.storage.Set(ctx, model.UserKey, user)
	if err != nil {
		return res, fmt.Errorf("failed to write user: %w", err)
	}
	return res, nil
}

func (s *Store) ClearUser(ctx context.Context) (model.WriteResult, error) {
	res, err := s.storage.Delete(ctx, model.UserKey)
	if err != nil {
		return res, fmt.Errorf("failed to delete user: %w", err)
	}
	return res, nil
}
