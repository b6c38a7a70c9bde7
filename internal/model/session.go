package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore persists server-side browser sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	GetByJTI(ctx context.Context, jti string) (Session, error)
	RevokeByJTI(ctx context.Context, jti string) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

// Session is the server-side record backing a session cookie. The cookie
// carries a signed token; the row pins its JTI and a hash of the token so
// a session can be revoked independently of the token's own expiry.
type Session struct {
	ID        uuid.UUID
	JTI       string
	UserID    uuid.UUID
	TokenHash []byte
	IssuedAt  time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
