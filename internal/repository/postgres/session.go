package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/GitMuhammadAli/song/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	query := `INSERT INTO sessions (id, jti, user_id, token_hash, issued_at, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		session.ID, session.JTI, session.UserID, session.TokenHash,
		session.IssuedAt, session.ExpiresAt, session.CreatedAt, session.UpdatedAt,
	)
	return err
}

func (r *SessionRepository) GetByJTI(ctx context.Context, jti string) (model.Session, error) {
	query := `SELECT id, jti, user_id, token_hash, issued_at, expires_at, revoked_at, created_at, updated_at
			  FROM sessions WHERE jti = $1`

	var session model.Session
	err := r.db.QueryRow(ctx, query, jti).Scan(
		&session.ID, &session.JTI, &session.UserID, &session.TokenHash,
		&session.IssuedAt, &session.ExpiresAt, &session.RevokedAt,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, err
	}

	return session, nil
}

func (r *SessionRepository) RevokeByJTI(ctx context.Context, jti string) error {
	const query = `UPDATE sessions SET revoked_at = NOW(), updated_at = NOW() WHERE jti = $1 AND revoked_at IS NULL`
	cmd, err := r.db.Exec(ctx, query, jti)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE sessions SET revoked_at = NOW(), updated_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}
