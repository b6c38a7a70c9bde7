package router

import (
	"net/http"

	"github.com/GitMuhammadAli/song/internal/api/http/handler"
	"github.com/GitMuhammadAli/song/internal/api/http/middleware"
	"github.com/GitMuhammadAli/song/internal/auth"
	"github.com/GitMuhammadAli/song/internal/logger"
	"github.com/GitMuhammadAli/song/internal/model"
)

// Router wires HTTP handlers and middleware for the favorites API.
type Router struct {
	authHandler     *handler.Auth
	favoriteHandler *handler.Favorite
	resolver        *auth.Resolver
	contextManager  model.ContextManager
	cookieName      string
	logger          *logger.Logger
}

// New creates a new Router instance.
func New(
	authHandler *handler.Auth,
	favoriteHandler *handler.Favorite,
	resolver *auth.Resolver,
	contextManager model.ContextManager,
	cookieName string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authHandler:     authHandler,
		favoriteHandler: favoriteHandler,
		resolver:        resolver,
		contextManager:  contextManager,
		cookieName:      cookieName,
		logger:          logger,
	}
}

// Register builds the route table. Auth routes are public; favorites and
// logout routes go through the authenticate middleware.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.resolver, r.contextManager, r.cookieName, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", r.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login-api", r.authHandler.LoginAPI)
	mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	mux.Handle("POST /api/auth/logout", authenticate.Handle(http.HandlerFunc(r.authHandler.Logout)))

	mux.Handle("GET /api/favorites", authenticate.Handle(http.HandlerFunc(r.favoriteHandler.List)))
	mux.Handle("POST /api/favorites", authenticate.Handle(http.HandlerFunc(r.favoriteHandler.Add)))
	mux.Handle("DELETE /api/favorites/{id}", authenticate.Handle(http.HandlerFunc(r.favoriteHandler.Remove)))

	return middleware.Chain(mux, logging.Handle)
}
