package middleware

import (
	"net/http"

	"github.com/GitMuhammadAli/song/internal/auth"
	"github.com/GitMuhammadAli/song/internal/logger"
	"github.com/GitMuhammadAli/song/internal/model"
)

// Authenticate resolves the acting user from request credentials and
// injects the user ID into the request context. Requests with no
// resolvable identity are rejected with 401 before reaching a handler.
type Authenticate struct {
	resolver       *auth.Resolver
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver *auth.Resolver, contextManager model.ContextManager, cookieName string, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		resolver:       resolver,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

// Handle wraps next with principal resolution.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds := auth.Credentials{
			AuthorizationHeader: r.Header.Get("Authorization"),
		}
		if cookie, err := r.Cookie(m.cookieName); err == nil {
			creds.SessionToken = cookie.Value
		}

		userID, ok := m.resolver.Resolve(r.Context(), creds)
		if !ok {
			writeUnauthorized(w)
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"Unauthorized"}`))
}
