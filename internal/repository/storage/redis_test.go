package storage

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis(t *testing.T) {
	t.Run("Connects to a running redis", func(t *testing.T) {
		ctx, st := suite.New(t)

		client, err := NewRedis(ctx, st.RedisAddr)

		require.NoError(t, err)
		assert.NoError(t, client.Close())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		_, err := NewRedis(context.Background(), "127.0.0.1:1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to redis")
	})
}
