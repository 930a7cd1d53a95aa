package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/vegaslabs/casinocore/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Casino Core Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitErrorHandler,
			a.InitDatabase,
			a.InitRedisClient,
			a.InitJWTService,
			a.InitPlayerLockManager,
			a.InitFlagProvider,
			a.InitGameStateStore,
			a.InitBlackjackSessionStore,
			a.InitBalanceLedger,
			a.InitEngineRegistry,
			a.InitRepository,
			a.InitScoringUseCase,
			a.InitResultRecorder,
			a.InitSettlementUseCase,
			a.InitAuthHandler,
			a.InitWagerHandler,
			a.InitScoringHandler,
			a.InitEngineHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.RegisterHooks),
	)

	app.Run()
}
