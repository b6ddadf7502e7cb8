package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/blinktactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/entity"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/tictactoe"
	"github.com/rocketscienceinc/blinktactoe-backend/testing/suite"
)

// startedGame returns a single game with one move played.
func startedGame(t *testing.T) entity.GameState {
	t.Helper()

	state, err := tictactoe.SelectCategory(tictactoe.InitializeSingleGame(), entity.Player1, "Animals", []string{"🐶", "🐱", "🐵", "🐰"})
	require.NoError(t, err)
	state, err = tictactoe.SelectCategory(state, entity.Player2, "Food", []string{"🍕", "🍟", "🍔", "🍩"})
	require.NoError(t, err)

	state, err = tictactoe.ApplyMove(tictactoe.StartGame(state), 4, "🐶")
	require.NoError(t, err)

	return state
}

func TestSessionRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewRedisSessionRepository(st.Storage, time.Minute)

	// When: Save is called
	err := sessionRepo.Save(ctx, "123", startedGame(t))

	// Then: no error should be returned, and the key carries the ttl
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "session:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewRedisSessionRepository(st.Storage, time.Minute)

		// Given: a saved session in the middle of a game
		state := startedGame(t)
		require.NoError(t, sessionRepo.Save(ctx, "123", state))

		// When: GetByID is called with existing ID
		retrieved, err := sessionRepo.GetByID(ctx, "123")

		// Then: the retrieved snapshot should match the saved one, sequence clock included
		require.NoError(t, err)
		assert.Equal(t, state, retrieved)
		assert.Equal(t, uint64(2), retrieved.NextSequence)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewRedisSessionRepository(st.Storage, time.Minute)

		// When: GetByID is called with non-existent ID
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: an ErrNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Empty(t, retrieved.Phase)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewRedisSessionRepository(st.Storage, 0)

		// Given: a saved session
		require.NoError(t, sessionRepo.Save(ctx, "123", tictactoe.InitializeGame()))

		// When: DeleteByID is called with existing ID
		err := sessionRepo.DeleteByID(ctx, "123")

		// Then: no error should be returned and the session is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewRedisSessionRepository(st.Storage, 0)

		// When: DeleteByID is called with non-existent ID
		err := sessionRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
