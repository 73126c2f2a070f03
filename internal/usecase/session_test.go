package usecase

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedMoves struct {
	cells []int
	next  int
}

func (that *scriptedMoves) NextCell(_ context.Context, _ *entity.Game, _ string) (int, error) {
	cell := that.cells[that.next]
	that.next++

	return cell, nil
}

type nopRenderer struct{}

func (nopRenderer) GameUpdated(_ *entity.Game, _ *entity.Player, _ int) {}

func newTestGameManager() (GameManager, repository.GameRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gameRepo := repository.NewGameRepository()
	botService := service.NewBotService(rand.New(rand.NewSource(1)))
	gamePlayService := service.NewGamePlayService(logger, botService)

	return NewGameManager(logger, gameRepo, gamePlayService), gameRepo
}

func TestGameManager_NewSession(t *testing.T) {
	ctx := context.Background()

	t.Run("PvP session seats two humans", func(t *testing.T) {
		// Given: a game manager
		manager, _ := newTestGameManager()

		// When: creating a PvP session
		game, err := manager.NewSession(ctx, entity.ModePvP, entity.PlayerX)

		// Then: both seats are human, X and O, with X to move
		require.NoError(t, err)
		require.NotEmpty(t, game.ID)
		require.Len(t, game.Players, 2)
		assert.Equal(t, entity.PlayerX, game.Players[0].Mark)
		assert.Equal(t, entity.PlayerO, game.Players[1].Mark)
		assert.False(t, game.Players[0].IsBot())
		assert.False(t, game.Players[1].IsBot())
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Bot session gives the bot the opposite mark", func(t *testing.T) {
		// Given: a game manager
		manager, _ := newTestGameManager()

		// When: creating an optimal-bot session with the human on O
		game, err := manager.NewSession(ctx, entity.ModeOptimal, entity.PlayerO)

		// Then: the bot takes X and X still moves first
		require.NoError(t, err)
		botPlayer := game.BotPlayer()
		require.NotNil(t, botPlayer)
		assert.Equal(t, entity.PlayerX, botPlayer.Mark)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.True(t, game.IsWithBot())
	})

	t.Run("Session is stored on creation", func(t *testing.T) {
		// Given: a game manager and its repository
		manager, gameRepo := newTestGameManager()

		// When: creating a session
		game, err := manager.NewSession(ctx, entity.ModeRandom, entity.PlayerX)
		require.NoError(t, err)

		// Then: the repository already knows the game
		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game.ID, stored.ID)
	})

	t.Run("Error on unsupported mode", func(t *testing.T) {
		// Given: a game manager
		manager, _ := newTestGameManager()

		// When: asking for an unknown mode
		_, err := manager.NewSession(ctx, "turbo", entity.PlayerX)

		// Then: ErrUnsupportedBotMode should be returned
		require.ErrorIs(t, err, service.ErrUnsupportedBotMode)
	})

	t.Run("Error on invalid mark", func(t *testing.T) {
		// Given: a game manager
		manager, _ := newTestGameManager()

		// When: asking for an unknown mark
		_, err := manager.NewSession(ctx, entity.ModePvP, "Z")

		// Then: ErrInvalidMark should be returned
		require.ErrorIs(t, err, ErrInvalidMark)
	})
}

func TestGameManager_RunGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Finished game lands in the tally", func(t *testing.T) {
		// Given: a PvP session and a script where X wins the top row
		manager, _ := newTestGameManager()
		game, err := manager.NewSession(ctx, entity.ModePvP, entity.PlayerX)
		require.NoError(t, err)

		// When: running the game to the end
		err = manager.RunGame(ctx, game, &scriptedMoves{cells: []int{0, 3, 1, 4, 2}}, nopRenderer{})
		require.NoError(t, err)

		// Then: the result is recorded and counted
		tally, err := manager.Tally(ctx)
		require.NoError(t, err)
		assert.Equal(t, Tally{WinsX: 1}, tally)
	})

	t.Run("Tally accumulates across sessions", func(t *testing.T) {
		// Given: one X win and one draw played back to back
		manager, _ := newTestGameManager()

		game, err := manager.NewSession(ctx, entity.ModePvP, entity.PlayerX)
		require.NoError(t, err)
		require.NoError(t, manager.RunGame(ctx, game, &scriptedMoves{cells: []int{0, 3, 1, 4, 2}}, nopRenderer{}))

		game, err = manager.NewSession(ctx, entity.ModePvP, entity.PlayerX)
		require.NoError(t, err)
		require.NoError(t, manager.RunGame(ctx, game, &scriptedMoves{cells: []int{0, 1, 2, 4, 3, 5, 7, 6, 8}}, nopRenderer{}))

		// When: reading the tally
		tally, err := manager.Tally(ctx)

		// Then: both outcomes are counted
		require.NoError(t, err)
		assert.Equal(t, Tally{WinsX: 1, Ties: 1}, tally)
	})
}
