package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GitMuhammadAli/song/internal/logger"
	"github.com/GitMuhammadAli/song/internal/model"
	"github.com/GitMuhammadAli/song/internal/token"
	"github.com/google/uuid"
)

// AuthService defines user registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, error)
	Login(ctx context.Context, email, password string) (model.User, error)
}

// SessionService defines browser session issue/revoke operations.
type SessionService interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Revoke(ctx context.Context, sessionToken string) error
}

// CookieConfig controls the session cookie written on login.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// Auth handles HTTP endpoints for registration, login and logout.
type Auth struct {
	authService    AuthService
	sessionService SessionService
	cookie         CookieConfig
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, sessionService SessionService, cookie CookieConfig, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		sessionService: sessionService,
		cookie:         cookie,
		logger:         logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Register handles POST /api/auth/register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, h.logger, fmt.Errorf("%w: invalid request body", model.ErrInvalidInput))
		return
	}

	user, err := h.authService.Register(r.Context(), model.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]userResponse{"user": toUserResponse(user)})
}

// LoginAPI handles POST /api/auth/login-api. On success it returns the
// bearer token used by the API-testing channel.
func (h *Auth) LoginAPI(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, h.logger, fmt.Errorf("%w: invalid request body", model.ErrInvalidInput))
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token.EncodeAPIToken(user.ID)})
}

// Login handles POST /api/auth/login. On success it sets the session cookie.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, h.logger, fmt.Errorf("%w: invalid request body", model.ErrInvalidInput))
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	sessionToken, err := h.sessionService.Issue(r.Context(), user.ID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    sessionToken,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]userResponse{"user": toUserResponse(user)})
}

// Logout handles POST /api/auth/logout. It revokes the server-side session
// and clears the cookie.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookie.Name); err == nil {
		if err := h.sessionService.Revoke(r.Context(), cookie.Value); err != nil {
			h.logger.Debug("Auth handler: session revoke failed on logout",
				"error", err.Error())
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
