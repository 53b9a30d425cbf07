package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	clearEnv(t)
	withArgs(t)

	t.Setenv(envStoreDriver, "postgres")
	t.Setenv(envStoreDSN, "postgres://u:p@localhost/taskflow")
	t.Setenv(envRedisPrefix, "tf:")
	t.Setenv(envTokenTTL, "2h")
	t.Setenv(envSessionCheckInterval, "5s")

	cfg := &Config{RedisAddr: "keep:6379", LogLevel: "info"}
	parseEnv(cfg)

	want := &Config{
		StoreDriver:          "postgres",
		StoreDSN:             "postgres://u:p@localhost/taskflow",
		RedisAddr:            "keep:6379",
		RedisPrefix:          "tf:",
		LogLevel:             "info",
		TokenTTL:             2 * time.Hour,
		SessionCheckInterval: 5 * time.Second,
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseEnv_DotenvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# local overrides\nTASKFLOW_STORE_DRIVER=memory\nTASKFLOW_TOKEN_TTL=90m\n"), 0o600))
	withArgs(t, "-env", path)

	cfg := &Config{StoreDriver: DriverSQLite}
	parseEnv(cfg)

	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)

	_, set := os.LookupEnv(envStoreDriver)
	assert.True(t, set, "blanked by clearEnv, never overwritten by the file")
	assert.Empty(t, os.Getenv(envStoreDriver))
}

func TestParseEnv_Panics(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		clearEnv(t)
		withArgs(t)
		t.Setenv(envTokenTTL, "forever")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("missing env file", func(t *testing.T) {
		clearEnv(t)
		withArgs(t, "-e", filepath.Join(t.TempDir(), "nope.env"))
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
