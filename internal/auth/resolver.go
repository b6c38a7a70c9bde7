package auth

import (
	"context"
	"strings"

	"github.com/GitMuhammadAli/song/internal/logger"
	"github.com/GitMuhammadAli/song/internal/token"
	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

// SessionResolver resolves a session token to a user ID.
type SessionResolver interface {
	GetUserID(ctx context.Context, sessionToken string) (uuid.UUID, error)
}

// Credentials carries the credential material extracted from an inbound
// request. Both fields are optional; empty values mean the channel was not
// presented.
type Credentials struct {
	AuthorizationHeader string
	SessionToken        string
}

// Resolver determines the acting user from request credentials. It checks
// the bearer channel first and falls back to the session channel; absence
// of identity is an ordinary outcome, not an error.
type Resolver struct {
	sessions SessionResolver
	logger   *logger.Logger
}

// NewResolver creates a new Resolver instance.
func NewResolver(sessions SessionResolver, logger *logger.Logger) *Resolver {
	return &Resolver{sessions: sessions, logger: logger}
}

// Resolve returns the user ID for the request credentials, if any.
// A bearer header that fails to decode is not fatal: resolution falls
// through to the session channel.
func (r *Resolver) Resolve(ctx context.Context, creds Credentials) (uuid.UUID, bool) {
	if strings.HasPrefix(creds.AuthorizationHeader, bearerPrefix) {
		raw := strings.TrimPrefix(creds.AuthorizationHeader, bearerPrefix)
		userID, err := token.DecodeAPIToken(raw)
		if err == nil {
			return userID, true
		}
		r.logger.Debug("Resolver: bearer token rejected, trying session",
			"error", err.Error())
	}

	if creds.SessionToken != "" {
		userID, err := r.sessions.GetUserID(ctx, creds.SessionToken)
		if err == nil && userID != uuid.Nil {
			return userID, true
		}
		if err != nil {
			r.logger.Debug("Resolver: session token rejected",
				"error", err.Error())
		}
	}

	return uuid.Nil, false
}
