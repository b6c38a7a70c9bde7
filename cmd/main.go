package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/GitMuhammadAli/song/internal/api/http/context"
	"github.com/GitMuhammadAli/song/internal/api/http/handler"
	"github.com/GitMuhammadAli/song/internal/api/http/router"
	httpServer "github.com/GitMuhammadAli/song/internal/api/http/server"
	"github.com/GitMuhammadAli/song/internal/auth"
	"github.com/GitMuhammadAli/song/internal/config"
	"github.com/GitMuhammadAli/song/internal/logger"
	"github.com/GitMuhammadAli/song/internal/model"
	"github.com/GitMuhammadAli/song/internal/repository/postgres"
	"github.com/GitMuhammadAli/song/internal/server"
	"github.com/GitMuhammadAli/song/internal/service"
	"github.com/GitMuhammadAli/song/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const sessionCookieTTL = 7 * 24 * time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	authService := service.NewAuth(userRepo, logger)
	sessionService := service.NewSession(tokenManager, sessionRepo, logger)
	favoriteService := service.NewFavorite(favoriteRepo, userRepo, logger)
	resolver := auth.NewResolver(sessionService, logger)
	ctxMgr := httpctx.NewManager()

	srv := registerHTTPServer(
		logger, authService, sessionService, favoriteService, resolver, ctxMgr,
		cfg.Session, fmt.Sprintf(":%s", cfg.HTTP.Port),
	)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	logger *logger.Logger,
	authService *service.Auth,
	sessionService *service.Session,
	favoriteService *service.Favorite,
	resolver *auth.Resolver,
	ctxMgr model.ContextManager,
	sessionCfg config.Session,
	addr string,
) *httpServer.HTTPServer {
	cookie := handler.CookieConfig{
		Name:   sessionCfg.CookieName,
		Secure: sessionCfg.Secure,
		MaxAge: sessionCookieTTL,
	}

	authHandler := handler.NewAuth(authService, sessionService, cookie, logger)
	favoriteHandler := handler.NewFavorite(favoriteService, ctxMgr, logger)

	r := router.New(authHandler, favoriteHandler, resolver, ctxMgr, sessionCfg.CookieName, logger)

	return httpServer.NewHTTPServer(r.Register(), addr)
}
