package model

import "github.com/google/uuid"

// TokenManager signs and validates the development backend's access/refresh tokens.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (token string, expiresIn int64, err error)
	GenerateRefreshToken(userID uuid.UUID) (token string, jti string, err error)
	ParseAccessToken(token string) (uuid.UUID, error)
	ParseRefreshToken(token string) (userID uuid.UUID, jti string, err error)
}
