package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vegaslabs/casinocore/internal/http/handlers"
	"github.com/vegaslabs/casinocore/internal/http/middleware"
	"github.com/vegaslabs/casinocore/internal/infrastructure/auth"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
)

// Server represents the HTTP server
type Server struct {
	router         *gin.Engine
	jwtService     auth.JWTService
	authHandler    *handlers.AuthHandler
	wagerHandler   *handlers.WagerHandler
	scoringHandler *handlers.ScoringHandler
	engineHandler  *handlers.EngineHandler
	errorHandler   *middleware.ErrorHandler
	port           string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	authHandler *handlers.AuthHandler,
	wagerHandler *handlers.WagerHandler,
	scoringHandler *handlers.ScoringHandler,
	engineHandler *handlers.EngineHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:         router,
		jwtService:     jwtService,
		authHandler:    authHandler,
		wagerHandler:   wagerHandler,
		scoringHandler: scoringHandler,
		engineHandler:  engineHandler,
		errorHandler:   errorHandler,
		port:           port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", s.authHandler.Login)
		}

		scoringRoutes := v1.Group("/scoring")
		{
			scoringRoutes.GET("/stats/:game", s.scoringHandler.GetStats)
			scoringRoutes.GET("/top/:game", s.scoringHandler.GetTopPlayers)
			scoringRoutes.GET("/recent/:game", s.scoringHandler.GetRecent)
			scoringRoutes.POST("/game-result", s.scoringHandler.RecordResult)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			playerRoutes := protected.Group("/players")
			{
				playerRoutes.GET("/me/balance", s.authHandler.GetBalance)
			}

			balanceRoutes := protected.Group("/balances")
			{
				balanceRoutes.GET("/:player", s.authHandler.GetPlayerBalance)
				balanceRoutes.POST("", s.authHandler.AdjustBalance)
			}

			gameRoutes := protected.Group("/games")
			{
				gameRoutes.POST("/:game/play", s.wagerHandler.Play)
				gameRoutes.GET("/:game/state", s.wagerHandler.GetState)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// NewEngineServer creates the HTTP server for a standalone engine service:
// just health plus the resolve endpoint, no auth or settlement surface.
func NewEngineServer(engineHandler *handlers.EngineHandler, errorHandler *middleware.ErrorHandler, log *logger.Logger, port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	router.GET("/health", engineHandler.Health)
	router.POST("/api/v1/engine/:game/resolve", engineHandler.Resolve)

	return &Server{router: router, engineHandler: engineHandler, port: port}
}
