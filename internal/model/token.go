package model

import "github.com/google/uuid"

// TokenManager generates and validates signed session tokens.
type TokenManager interface {
	GenerateSessionToken(userID uuid.UUID) (token string, jti string, err error)
	ParseSessionToken(token string) (userID uuid.UUID, jti string, err error)
}
