package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with every section set
		path := writeConfig(t, `
log-level: debug
mode: websocket
opponent: random
http-port: "8080"
redis:
  enabled: true
  host: redis
  port: "6380"
  session-ttl: 1h
`)

		// When: loading it
		conf, err := Load(path)

		// Then: all values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ModeWebsocket, conf.Mode)
		assert.Equal(t, OpponentRandom, conf.Opponent)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.SessionTTL)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, ModeConsole, conf.Mode)
		assert.Equal(t, OpponentPerfect, conf.Opponent)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.SessionTTL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "opponent: perfect\n")
		t.Setenv("OPPONENT", "random")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, OpponentRandom, conf.Opponent)
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		path := writeConfig(t, "mode: telnet\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("Rejects an unknown opponent", func(t *testing.T) {
		t.Setenv("OPPONENT", "oracle")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, ErrUnknownOpponent)
	})

	t.Run("MustLoad panics on a bad config", func(t *testing.T) {
		path := writeConfig(t, "mode: telnet\n")

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
