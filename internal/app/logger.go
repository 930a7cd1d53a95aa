package app

import (
	"github.com/vegaslabs/casinocore/internal/config"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
