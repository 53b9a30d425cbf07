package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/taskflow/internal/flagx"
)

const (
	envStoreDriver          = "TASKFLOW_STORE_DRIVER"
	envStoreDSN             = "TASKFLOW_STORE_DSN"
	envRedisAddr            = "TASKFLOW_REDIS_ADDR"
	envRedisPrefix          = "TASKFLOW_REDIS_PREFIX"
	envLogLevel             = "TASKFLOW_LOG_LEVEL"
	envTokenTTL             = "TASKFLOW_TOKEN_TTL"
	envSessionCheckInterval = "TASKFLOW_SESSION_CHECK_INTERVAL"
)

// parseEnv overlays Config with TASKFLOW_* variables. The dotenv file named
// by -e/-env is read without touching the process environment, and process
// variables take precedence over it. Unset or empty variables are skipped.
func parseEnv(cfg *Config) {
	fromFile := map[string]string{}
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil {
			panic(err)
		}
		fromFile = m
	}

	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fromFile[key]
	}

	setString(&cfg.StoreDriver, lookup(envStoreDriver))
	setString(&cfg.StoreDSN, lookup(envStoreDSN))
	setString(&cfg.RedisAddr, lookup(envRedisAddr))
	setString(&cfg.RedisPrefix, lookup(envRedisPrefix))
	setString(&cfg.LogLevel, lookup(envLogLevel))
	setDuration(&cfg.TokenTTL, envTokenTTL, lookup(envTokenTTL))
	setDuration(&cfg.SessionCheckInterval, envSessionCheckInterval, lookup(envSessionCheckInterval))
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key, v string) {
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = d
}
