package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GitMuhammadAli/song/internal/logger"
	"github.com/GitMuhammadAli/song/internal/model"
	"github.com/google/uuid"
)

// Favorite enforces ownership on top of the favorites store.
type Favorite struct {
	favoriteStore model.FavoriteStore
	userStore     model.UserStore
	logger        *logger.Logger
}

// NewFavorite creates a new Favorite service.
func NewFavorite(
	favoriteStore model.FavoriteStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Favorite {
	return &Favorite{
		favoriteStore: favoriteStore,
		userStore:     userStore,
		logger:        logger,
	}
}

// List returns all favorites owned by the user, newest first. A user with
// no favorites gets an empty slice, not an error.
func (s *Favorite) List(ctx context.Context, userID uuid.UUID) ([]model.FavoriteSong, error) {
	songs, err := s.favoriteStore.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites by owner id: %w", err)
	}

	return songs, nil
}

// Add trims the song name and stores a new favorite owned by the user.
// Duplicate names are allowed.
func (s *Favorite) Add(ctx context.Context, userID uuid.UUID, songName string) (model.FavoriteSong, error) {
	name := strings.TrimSpace(songName)
	if name == "" {
		return model.FavoriteSong{}, fmt.Errorf("%w: song name is required", model.ErrInvalidInput)
	}

	_, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.FavoriteSong{}, model.ErrUnauthenticated
	}
	if err != nil {
		return model.FavoriteSong{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	song := model.FavoriteSong{
		ID:        uuid.New(),
		OwnerID:   userID,
		SongName:  name,
		CreatedAt: time.Now(),
	}

	savedSong, err := s.favoriteStore.Create(ctx, song)
	if err != nil {
		return model.FavoriteSong{}, fmt.Errorf("failed to create favorite: %w", err)
	}

	s.logger.Info("Favorite service: song added",
		"user_id", userID,
		"song_id", savedSong.ID)

	return savedSong, nil
}

// Remove deletes a favorite after checking ownership. The owner check uses
// the row fetched in this same call; a concurrent delete of the same row
// surfaces as ErrNotFound from the delete, never a crash.
func (s *Favorite) Remove(ctx context.Context, userID uuid.UUID, songID uuid.UUID) error {
	song, err := s.favoriteStore.GetByID(ctx, songID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get favorite: %w", err)
	}

	if song.OwnerID != userID {
		s.logger.Info("Favorite service: delete refused, requester is not the owner",
			"user_id", userID,
			"song_id", songID)
		return model.ErrForbidden
	}

	if err := s.favoriteStore.Delete(ctx, songID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	s.logger.Info("Favorite service: song removed",
		"user_id", userID,
		"song_id", songID)

	return nil
}
