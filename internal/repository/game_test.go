package repository

import (
	"testing"

	"github.com/marcus8448/hammer/internal/entity"
	"github.com/marcus8448/hammer/internal/reversi"
	"github.com/marcus8448/hammer/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a fresh game
	game := entity.NewGame("123", entity.PrivateType)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game with a move played
		game := entity.NewGame("123", entity.PrivateType)
		game.Status = entity.StatusOngoing
		require.NoError(t, game.ApplyMove(reversi.Black, 2, 3))

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game matches the saved state, board included
		require.NoError(t, err)
		require.Equal(t, game.ID, retrievedGame.ID)
		require.Equal(t, game.Status, retrievedGame.Status)
		require.Equal(t, game.Board, retrievedGame.Board)
		require.Equal(t, reversi.White, retrievedGame.Turn)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
		assert.Empty(t, retrievedGame.ID)
		assert.Empty(t, retrievedGame.Status)
	})
}

func TestGameRepository_GetWaitingPublicGame(t *testing.T) {
	t.Run("waiting public game is found", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored waiting public game
		game := entity.NewGame("123", entity.PublicType)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: a waiting public game is requested
		found, err := gameRepo.GetWaitingPublicGame(ctx)

		// Then: the stored game comes back
		require.NoError(t, err)
		require.Equal(t, game.ID, found.ID)
	})

	t.Run("started game leaves the waiting set", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a public game that has started
		game := entity.NewGame("123", entity.PublicType)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		game.Status = entity.StatusOngoing
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: a waiting public game is requested
		_, err := gameRepo.GetWaitingPublicGame(ctx)

		// Then: nothing is waiting
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
	})

	t.Run("no waiting games", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: a waiting public game is requested on an empty store
		_, err := gameRepo.GetWaitingPublicGame(ctx)

		// Then: ErrGameNotFound is returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a stored public game
	game := entity.NewGame("123", entity.PublicType)
	err := gameRepo.CreateOrUpdate(ctx, game)
	require.NoError(t, err)

	// When: DeleteByID is called with existing ID
	err = gameRepo.DeleteByID(ctx, game.ID)

	// Then: the game and its waiting-set entry are gone
	require.NoError(t, err)

	_, err = gameRepo.GetByID(ctx, game.ID)
	require.Error(t, err)
	assert.Equal(t, ErrGameNotFound, err)

	_, err = gameRepo.GetWaitingPublicGame(ctx)
	require.Error(t, err)
	assert.Equal(t, ErrGameNotFound, err)
}
