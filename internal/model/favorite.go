package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FavoriteStore defines persistence operations for favorite songs.
type FavoriteStore interface {
	Create(ctx context.Context, song FavoriteSong) (FavoriteSong, error)
	GetByID(ctx context.Context, id uuid.UUID) (FavoriteSong, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]FavoriteSong, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FavoriteSong represents a song a user marked as favorite.
// Records are immutable after creation; there is no update operation.
type FavoriteSong struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	SongName  string
	CreatedAt time.Time
}
