package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a copy of the session", func(t *testing.T) {
		repo := NewMemorySessionRepository()

		// Given: a stored session
		session := entity.NewSession("123", entity.X)
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		// When: the caller keeps playing without saving
		require.NoError(t, session.MakeTurn(entity.X, 0, 0))

		// Then: the stored snapshot is unchanged
		stored, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.NewBoard(), stored.Board)
	})

	t.Run("Missing session", func(t *testing.T) {
		repo := NewMemorySessionRepository()

		_, err := repo.GetByID(ctx, "nope")
		require.ErrorIs(t, err, ErrSessionNotFound)

		err = repo.DeleteByID(ctx, "nope")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Delete removes the session", func(t *testing.T) {
		repo := NewMemorySessionRepository()
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewSession("123", entity.O)))

		require.NoError(t, repo.DeleteByID(ctx, "123"))

		_, err := repo.GetByID(ctx, "123")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})
}
