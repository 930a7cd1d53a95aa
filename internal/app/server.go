package app

import (
	"context"

	"github.com/vegaslabs/casinocore/internal/http"
	"github.com/vegaslabs/casinocore/internal/http/handlers"
	"github.com/vegaslabs/casinocore/internal/http/middleware"
	"github.com/vegaslabs/casinocore/internal/infrastructure/auth"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"github.com/vegaslabs/casinocore/internal/infrastructure/recorder"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	authHandler *handlers.AuthHandler,
	wagerHandler *handlers.WagerHandler,
	scoringHandler *handlers.ScoringHandler,
	engineHandler *handlers.EngineHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, authHandler, wagerHandler, scoringHandler, engineHandler, errorHandler, log, port)
}

// RegisterHooks ties the recorder and HTTP server to the fx lifecycle.
func (a *application) RegisterHooks(
	lc fx.Lifecycle,
	server *http.Server,
	dispatcher *recorder.Dispatcher,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			dispatcher.Start()
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			log.Info("Casino core service started", zap.String("port", a.config.Server.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			dispatcher.Stop()
			return log.Sync()
		},
	})
}
