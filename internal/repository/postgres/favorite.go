package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/GitMuhammadAli/song/internal/model"
)

var _ model.FavoriteStore = (*FavoriteRepository)(nil)

type FavoriteRepository struct {
	db *Connection
}

func NewFavoriteRepository(db *Connection) *FavoriteRepository {
	return &FavoriteRepository{
		db: db,
	}
}

func (r *FavoriteRepository) Create(ctx context.Context, song model.FavoriteSong) (model.FavoriteSong, error) {
	query := `INSERT INTO favorite_songs (id, owner_id, song_name, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, owner_id, song_name, created_at`

	var savedSong model.FavoriteSong
	err := r.db.QueryRow(ctx, query,
		song.ID, song.OwnerID, song.SongName, song.CreatedAt,
	).Scan(
		&savedSong.ID, &savedSong.OwnerID, &savedSong.SongName, &savedSong.CreatedAt,
	)
	if err != nil {
		return model.FavoriteSong{}, err
	}

	return savedSong, nil
}

func (r *FavoriteRepository) GetByID(ctx context.Context, id uuid.UUID) (model.FavoriteSong, error) {
	query := `SELECT id, owner_id, song_name, created_at
			  FROM favorite_songs WHERE id = $1`

	var song model.FavoriteSong
	err := r.db.QueryRow(ctx, query, id).Scan(
		&song.ID, &song.OwnerID, &song.SongName, &song.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FavoriteSong{}, model.ErrNotFound
		}
		return model.FavoriteSong{}, err
	}

	return song, nil
}

func (r *FavoriteRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.FavoriteSong, error) {
	// Secondary sort on id keeps the order stable when two songs share a
	// creation timestamp.
	query := `SELECT id, owner_id, song_name, created_at
			  FROM favorite_songs
			  WHERE owner_id = $1
			  ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []model.FavoriteSong
	for rows.Next() {
		var song model.FavoriteSong
		err := rows.Scan(&song.ID, &song.OwnerID, &song.SongName, &song.CreatedAt)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return songs, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM favorite_songs WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
