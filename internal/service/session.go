package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GitMuhammadAli/song/internal/logger"
	"github.com/GitMuhammadAli/song/internal/model"
)

// Session provides high-level operations for issuing, resolving and
// revoking browser sessions. It composes the TokenManager and SessionStore.
type Session struct {
	manager model.TokenManager
	store   model.SessionStore
	logger  *logger.Logger
}

// NewSession creates a new Session service.
func NewSession(manager model.TokenManager, store model.SessionStore, logger *logger.Logger) *Session {
	return &Session{manager: manager, store: store, logger: logger}
}

// NOTE: Keep the duration here in sync with the token manager. It is used
// only for persistence; cryptographic validity is checked against the JWT
// claims by the manager at parse time.
const sessionTTL = 7 * 24 * time.Hour

// Issue creates a signed session token and persists its server-side record.
func (s *Session) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	tokenString, jti, err := s.manager.GenerateSessionToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}

	now := time.Now()
	session := model.Session{
		ID:        uuid.New(),
		JTI:       jti,
		UserID:    userID,
		TokenHash: hashToken(tokenString),
		IssuedAt:  now,
		ExpiresAt: now.Add(sessionTTL),
		RevokedAt: nil,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, session); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}

	return tokenString, nil
}

// GetUserID resolves a presented session token to its user ID. The token
// must parse and verify, and its server-side record must be live: not
// revoked, not expired, and matching the stored token hash.
func (s *Session) GetUserID(ctx context.Context, presentedToken string) (uuid.UUID, error) {
	userID, jti, err := s.manager.ParseSessionToken(presentedToken)
	if err != nil {
		return uuid.Nil, err
	}

	session, err := s.store.GetByJTI(ctx, jti)
	if err != nil {
		return uuid.Nil, err
	}

	if err := validateSession(session, hashToken(presentedToken), time.Now()); err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// Revoke invalidates the session backing the presented token.
func (s *Session) Revoke(ctx context.Context, presentedToken string) error {
	_, jti, err := s.manager.ParseSessionToken(presentedToken)
	if err != nil {
		return err
	}
	return s.store.RevokeByJTI(ctx, jti)
}

// RevokeAllForUser invalidates every session of the given user.
func (s *Session) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.store.RevokeAllByUser(ctx, userID)
}

func hashToken(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func validateSession(session model.Session, presentedHash []byte, now time.Time) error {
	if session.RevokedAt != nil {
		return model.ErrSessionRevoked
	}
	if now.After(session.ExpiresAt) {
		return model.ErrSessionExpired
	}
	if !equalBytes(session.TokenHash, presentedHash) {
		return model.ErrSessionMismatch
	}
	return nil
}

func equalBytes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
