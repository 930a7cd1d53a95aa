package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/vegaslabs/casinocore/internal/config"
	"github.com/vegaslabs/casinocore/internal/infrastructure/ledger"
	"github.com/vegaslabs/casinocore/internal/infrastructure/lock"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"github.com/vegaslabs/casinocore/internal/infrastructure/seeder"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", "development", "Environment")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	defaultBalance := cfg.Ledger.DefaultBalance
	if defaultBalance <= 0 {
		defaultBalance = 1000
	}

	lg := logger.NewLogger(config.GetEnvironment(), cfg.Log.Level)
	balanceLedger := ledger.NewRedisLedger(
		rdb,
		ledger.NewDegradedProvider(defaultBalance),
		lock.NewPlayerLockManager(),
		cfg.Ledger.SerializePlayers,
		defaultBalance,
		lg,
	)

	newSeeder := seeder.NewSeeder(balanceLedger, defaultBalance)

	log.Println("Starting player seeding...")
	if err := newSeeder.SeedPlayers(context.Background()); err != nil {
		log.Fatalf("Failed to seed players: %v", err)
	}
	log.Println("Player seeding completed successfully")
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
