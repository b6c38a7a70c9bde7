package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GitMuhammadAli/song/internal/logger"
	"github.com/GitMuhammadAli/song/internal/model"
	"github.com/google/uuid"
)

// FavoriteService defines the ownership-checked favorites contract.
type FavoriteService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.FavoriteSong, error)
	Add(ctx context.Context, userID uuid.UUID, songName string) (model.FavoriteSong, error)
	Remove(ctx context.Context, userID uuid.UUID, songID uuid.UUID) error
}

// Favorite handles HTTP endpoints for the favorites list.
type Favorite struct {
	favoriteService FavoriteService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewFavorite creates a new Favorite handler.
func NewFavorite(favoriteService FavoriteService, contextManager model.ContextManager, logger *logger.Logger) *Favorite {
	return &Favorite{
		favoriteService: favoriteService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

type addFavoriteRequest struct {
	SongName string `json:"songName"`
}

type songResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	SongName  string    `json:"songName"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /api/favorites.
func (h *Favorite) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrUnauthenticated)
		return
	}

	songs, err := h.favoriteService.List(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	out := make([]songResponse, 0, len(songs))
	for _, song := range songs {
		out = append(out, toSongResponse(song))
	}

	writeJSON(w, http.StatusOK, map[string][]songResponse{"songs": out})
}

// Add handles POST /api/favorites.
func (h *Favorite) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrUnauthenticated)
		return
	}

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, h.logger, fmt.Errorf("%w: invalid request body", model.ErrInvalidInput))
		return
	}

	song, err := h.favoriteService.Add(r.Context(), userID, req.SongName)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]songResponse{"song": toSongResponse(song)})
}

// Remove handles DELETE /api/favorites/{id}.
func (h *Favorite) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrUnauthenticated)
		return
	}

	songID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, h.logger, model.ErrNotFound)
		return
	}

	if err := h.favoriteService.Remove(r.Context(), userID, songID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Song deleted successfully"})
}

func toSongResponse(song model.FavoriteSong) songResponse {
	return songResponse{
		ID:        song.ID.String(),
		UserID:    song.OwnerID.String(),
		SongName:  song.SongName,
		CreatedAt: song.CreatedAt,
	}
}
