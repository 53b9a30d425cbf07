package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/taskflow/internal/repositories/kv"
)

// Store drivers understood by the CLI.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
	DriverNone     = "none"
)

// Config holds runtime settings for the TaskFlow CLI.
type Config struct {
	StoreDriver          string
	StoreDSN             string
	RedisAddr            string
	RedisPrefix          string
	LogLevel             string
	TokenTTL             time.Duration
	SessionCheckInterval time.Duration
}

// DefaultStoreDSN is the SQLite file under the user's config directory, or
// taskflow.db in the working directory when that cannot be resolved.
func DefaultStoreDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "taskflow.db"
	}
	return filepath.Join(dir, "taskflow", "taskflow.db")
}

func (c *Config) LoadDefaults() {
	c.StoreDriver = DriverSQLite
	c.StoreDSN = DefaultStoreDSN()
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPrefix = kv.DefaultRedisPrefix
	c.LogLevel = "info"
	c.TokenTTL = 24 * time.Hour
	c.SessionCheckInterval = 30 * time.Second
}

// LoadConfig applies defaults, then environment, JSON and flags. Later
// sources take precedence over earlier ones. Malformed input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
