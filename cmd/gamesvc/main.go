// Package main runs the game engines as a standalone service. It exposes
// only the resolve endpoint; balances and scoring stay with the settlement
// service, which reaches this one through the remote engine client.
package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/vegaslabs/casinocore/internal/config"
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/engine"
	"github.com/vegaslabs/casinocore/internal/engine/blackjack"
	"github.com/vegaslabs/casinocore/internal/engine/dice"
	"github.com/vegaslabs/casinocore/internal/engine/roulette"
	"github.com/vegaslabs/casinocore/internal/engine/slots"
	httpserver "github.com/vegaslabs/casinocore/internal/http"
	"github.com/vegaslabs/casinocore/internal/http/handlers"
	"github.com/vegaslabs/casinocore/internal/http/middleware"
	"github.com/vegaslabs/casinocore/internal/infrastructure/flags"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"github.com/vegaslabs/casinocore/internal/infrastructure/statestore"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", "development", "Environment")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath, *configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	lg := logger.NewLogger(config.GetEnvironment(), cfg.Log.Level)
	flagProvider := flags.NewProvider(cfg.Flags)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	sessions := blackjack.NewSessionStore(statestore.NewRedisStore(rdb))

	registry := engine.NewRegistry()
	engines := []domain.GameEngine{
		dice.New(flagProvider, lg),
		slots.New(lg),
		roulette.New(flagProvider, lg),
		blackjack.New(sessions, lg),
	}
	for _, eng := range engines {
		if err := registry.Register(eng); err != nil {
			lg.Fatal("Failed to register engine", zap.Error(err))
		}
	}

	port := cfg.Server.Port
	if port == "" {
		port = "8081"
	}

	errorHandler := middleware.NewErrorHandler(stdlog.New(os.Stdout, "[gamesvc] ", stdlog.LstdFlags))
	server := httpserver.NewEngineServer(handlers.NewEngineHandler(registry), errorHandler, lg, port)

	lg.Info("Game engine service started", zap.String("port", port))
	if err := server.Start(); err != nil {
		lg.Fatal("Game engine service failed", zap.Error(err))
	}
}

// loadConfig loads configuration from file
func loadConfig(configPath, configFile string) (*config.Config, error) {
	viper.SetConfigName(fmt.Sprintf("config.%s", configFile))
	viper.SetConfigType("yml")
	viper.AddConfigPath(configPath)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &cfg, nil
}
