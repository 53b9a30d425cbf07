// Package config loads runtime configuration for the TaskFlow CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (see parseEnv). A dotenv file passed with -e or
//     -env is read first; variables already set in the process win over it.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Environment
//
//	TASKFLOW_STORE_DRIVER             sqlite | postgres | redis | memory | none
//	TASKFLOW_STORE_DSN                SQLite path or PostgreSQL DSN
//	TASKFLOW_REDIS_ADDR               host:port of the Redis server
//	TASKFLOW_REDIS_PREFIX             key prefix inside Redis
//	TASKFLOW_LOG_LEVEL                debug | info | warn | error
//	TASKFLOW_TOKEN_TTL                session lifetime, e.g. "24h"
//	TASKFLOW_SESSION_CHECK_INTERVAL   session watcher period, e.g. "30s"
//
// Supported flags
//
//	-s string     store driver
//	-d string     store DSN
//	-r string     Redis address
//	-l string     log level
//	-t duration   session lifetime
//	-i int        session check interval (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "30s" or
// integer nanoseconds. Empty or missing fields leave the earlier value alone:
//
//	{
//	  "store_driver": "sqlite",
//	  "store_dsn": "/home/ann/.config/taskflow/taskflow.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_prefix": "taskflow:",
//	  "log_level": "info",
//	  "token_ttl": "24h",
//	  "session_check_interval": "30s"
//	}
package config
