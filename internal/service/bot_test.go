package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_ChooseCell(t *testing.T) {
	t.Run("Error on full board", func(t *testing.T) {
		// Given: a random-mode game with no free cells
		game := entity.NewGame("123", entity.ModeRandom)
		game.Board = [9]string{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
		}

		bot := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot is asked for a cell
		_, err := bot.ChooseCell(game, entity.PlayerO)

		// Then: ErrNoAvailableMoves should be returned
		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Error on unsupported mode", func(t *testing.T) {
		// Given: a game configured with an unknown bot mode
		game := entity.NewGame("123", "turbo")

		bot := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot is asked for a cell
		_, err := bot.ChooseCell(game, entity.PlayerO)

		// Then: ErrUnsupportedBotMode should be returned
		require.ErrorIs(t, err, ErrUnsupportedBotMode)
	})

	t.Run("Random mode picks only free cells", func(t *testing.T) {
		// Given: a random-mode game with three free cells
		game := entity.NewGame("123", entity.ModeRandom)
		game.Board = [9]string{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			"", "", "",
		}

		bot := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot picks cells many times
		for i := 0; i < 100; i++ {
			cell, err := bot.ChooseCell(game, entity.PlayerO)
			require.NoError(t, err)

			// Then: only a free cell is ever chosen
			assert.Contains(t, []int{6, 7, 8}, cell)
		}
	})

	t.Run("Random mode is roughly uniform", func(t *testing.T) {
		// Given: a random-mode game with three free cells
		game := entity.NewGame("123", entity.ModeRandom)
		game.Board = [9]string{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			"", "", "",
		}

		bot := NewBotService(rand.New(rand.NewSource(42)))

		// When: drawing a large sample of choices
		counts := make(map[int]int)
		for i := 0; i < 3000; i++ {
			cell, err := bot.ChooseCell(game, entity.PlayerO)
			require.NoError(t, err)
			counts[cell]++
		}

		// Then: every free cell shows up near the expected third of the time
		for _, cell := range []int{6, 7, 8} {
			assert.Greater(t, counts[cell], 850, "cell %d drawn too rarely", cell)
			assert.Less(t, counts[cell], 1150, "cell %d drawn too often", cell)
		}
	})

	t.Run("Optimal mode takes the winning cell", func(t *testing.T) {
		// Given: an optimal-mode game where O can win at cell 2
		game := entity.NewGame("123", entity.ModeOptimal)
		game.Board = [9]string{entity.PlayerO, entity.PlayerO, "", entity.PlayerX, entity.PlayerX, "", "", "", ""}
		game.Turn = entity.PlayerO

		bot := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot is asked for a cell
		cell, err := bot.ChooseCell(game, entity.PlayerO)

		// Then: the winning cell is chosen
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Optimal mode leaves the board untouched", func(t *testing.T) {
		// Given: an optimal-mode game mid-way through
		game := entity.NewGame("123", entity.ModeOptimal)
		game.Board = [9]string{entity.PlayerX, "", "", "", entity.PlayerO, "", "", "", ""}
		before := game.Board

		bot := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot searches for its cell
		_, err := bot.ChooseCell(game, entity.PlayerX)
		require.NoError(t, err)

		// Then: the board is bit-for-bit unchanged
		assert.Equal(t, before, game.Board)
	})
}
