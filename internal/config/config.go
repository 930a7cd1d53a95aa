package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Database DatabaseConfig  `mapstructure:"database"`
	Redis    RedisConfig     `mapstructure:"redis"`
	JWT      JWTConfig       `mapstructure:"jwt"`
	Policy   PolicyConfig    `mapstructure:"policy"`
	Ledger   LedgerConfig    `mapstructure:"ledger"`
	Engines  EnginesConfig   `mapstructure:"engines"`
	Scoring  ScoringConfig   `mapstructure:"scoring"`
	Flags    map[string]bool `mapstructure:"flags"`
	Log      LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

// RedisConfig holds redis-related configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

// PolicyConfig holds wager policy configuration
type PolicyConfig struct {
	MinBet         float64 `mapstructure:"minBet"`
	MinBetBehavior string  `mapstructure:"minBetBehavior"`
}

// LedgerConfig holds balance ledger configuration
type LedgerConfig struct {
	DefaultBalance   float64 `mapstructure:"defaultBalance"`
	SerializePlayers bool    `mapstructure:"serializePlayers"`
}

// EnginesConfig holds game engine wiring configuration. A game listed under
// remote is resolved over HTTP instead of in process.
type EnginesConfig struct {
	Remote map[string]string `mapstructure:"remote"`
}

// ScoringConfig holds result recorder configuration
type ScoringConfig struct {
	// RemoteURL, when set, sends results to a separate scoring service
	// instead of the local database.
	RemoteURL string `mapstructure:"remoteUrl"`
	QueueSize int    `mapstructure:"queueSize"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetDatabaseURL returns the database connection string in URL form, as the
// migration tooling expects it
func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("CASINOCORE_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
