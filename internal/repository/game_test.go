package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGame() *entity.Game {
	game := entity.NewGame("123", entity.PlayerO)
	game.Board = entity.Board{
		{entity.PlayerX, entity.Empty, entity.Empty},
		{entity.Empty, entity.PlayerO, entity.Empty},
	}
	return game
}

// gameRepositoryContract - runs the same checks against any GameRepository.
func gameRepositoryContract(t *testing.T, newRepo func(t *testing.T) (context.Context, GameRepository)) {
	t.Helper()

	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game
		game := sampleGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("CreateOrUpdate_Overwrites", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game that is then finished
		game := sampleGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))
		game.Status = entity.StatusFinished
		game.Winner = entity.WinnerTie

		// When: saving it again
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// Then: the latest version is returned
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, retrievedGame.Status)
		assert.Equal(t, entity.WinnerTie, retrievedGame.Winner)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})

	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game
		game := sampleGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned and the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameRepository(t *testing.T) {
	gameRepositoryContract(t, func(t *testing.T) (context.Context, GameRepository) {
		ctx, st := suite.New(t)
		return ctx, NewGameRepository(st.Storage)
	})
}

func TestMemoryGameRepository(t *testing.T) {
	gameRepositoryContract(t, func(_ *testing.T) (context.Context, GameRepository) {
		return context.Background(), NewMemoryGameRepository()
	})

	t.Run("Returned games are copies", func(t *testing.T) {
		ctx := context.Background()
		gameRepo := NewMemoryGameRepository()
		game := sampleGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		retrievedGame.Board[2][2] = entity.PlayerX

		again, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Empty, again.Board[2][2])
	})
}
