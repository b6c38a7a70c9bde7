package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/GitMuhammadAli/song/internal/api/http/context"
	"github.com/GitMuhammadAli/song/internal/model"
	"github.com/GitMuhammadAli/song/internal/testutil"
)

// MockFavoriteService mocks the FavoriteService interface
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) List(ctx context.Context, userID uuid.UUID) ([]model.FavoriteSong, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.FavoriteSong), args.Error(1)
}

func (m *MockFavoriteService) Add(ctx context.Context, userID uuid.UUID, songName string) (model.FavoriteSong, error) {
	args := m.Called(ctx, userID, songName)
	return args.Get(0).(model.FavoriteSong), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID uuid.UUID, songID uuid.UUID) error {
	args := m.Called(ctx, userID, songID)
	return args.Error(0)
}

func authedRequest(t *testing.T, method, target string, body string, userID uuid.UUID) *http.Request {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := httpctx.NewManager().SetUserIDToContext(req.Context(), userID)
	return req.WithContext(ctx)
}

func TestFavoriteHandler_List(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	songs := []model.FavoriteSong{
		{ID: uuid.New(), OwnerID: userID, SongName: "C", CreatedAt: now},
		{ID: uuid.New(), OwnerID: userID, SongName: "B", CreatedAt: now.Add(-time.Minute)},
	}

	svc := new(MockFavoriteService)
	svc.On("List", mock.Anything, userID).Return(songs, nil)

	h := NewFavorite(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(t, http.MethodGet, "/api/favorites", "", userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Songs []songResponse `json:"songs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Songs, 2)
	assert.Equal(t, "C", resp.Songs[0].SongName)
	assert.Equal(t, "B", resp.Songs[1].SongName)
	assert.Equal(t, userID.String(), resp.Songs[0].UserID)
}

func TestFavoriteHandler_List_Empty(t *testing.T) {
	userID := uuid.New()

	svc := new(MockFavoriteService)
	svc.On("List", mock.Anything, userID).Return([]model.FavoriteSong{}, nil)

	h := NewFavorite(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(t, http.MethodGet, "/api/favorites", "", userID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"songs":[]}`, rec.Body.String())
}

func TestFavoriteHandler_Add(t *testing.T) {
	userID := uuid.New()
	songID := uuid.New()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(*MockFavoriteService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"songName":"Tere Bin"}`,
			mockSetup: func(svc *MockFavoriteService) {
				svc.On("Add", mock.Anything, userID, "Tere Bin").Return(model.FavoriteSong{
					ID:        songID,
					OwnerID:   userID,
					SongName:  "Tere Bin",
					CreatedAt: time.Now(),
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "empty song name",
			body: `{"songName":"   "}`,
			mockSetup: func(svc *MockFavoriteService) {
				svc.On("Add", mock.Anything, userID, "   ").Return(model.FavoriteSong{}, model.ErrInvalidInput)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockFavoriteService)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			h := NewFavorite(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			h.Add(rec, authedRequest(t, http.MethodPost, "/api/favorites", tt.body, userID))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var resp struct {
					Song songResponse `json:"song"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, songID.String(), resp.Song.ID)
				assert.Equal(t, "Tere Bin", resp.Song.SongName)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestFavoriteHandler_Remove(t *testing.T) {
	userID := uuid.New()
	songID := uuid.New()

	tests := []struct {
		name       string
		pathID     string
		mockSetup  func(*MockFavoriteService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "deleted",
			pathID: songID.String(),
			mockSetup: func(svc *MockFavoriteService) {
				svc.On("Remove", mock.Anything, userID, songID).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Song deleted successfully"}`,
		},
		{
			name:   "not found",
			pathID: songID.String(),
			mockSetup: func(svc *MockFavoriteService) {
				svc.On("Remove", mock.Anything, userID, songID).Return(model.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Song not found"}`,
		},
		{
			name:   "forbidden",
			pathID: songID.String(),
			mockSetup: func(svc *MockFavoriteService) {
				svc.On("Remove", mock.Anything, userID, songID).Return(model.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Forbidden"}`,
		},
		{
			name:       "unparseable id is treated as not found",
			pathID:     "not-an-id",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Song not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockFavoriteService)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			h := NewFavorite(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
			req := authedRequest(t, http.MethodDelete, "/api/favorites/"+tt.pathID, "", userID)
			req.SetPathValue("id", tt.pathID)
			rec := httptest.NewRecorder()
			h.Remove(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
