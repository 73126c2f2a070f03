package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var (
	ErrNoAvailableMoves   = errors.New("no available moves")
	ErrUnsupportedBotMode = errors.New("unsupported bot mode")
)

type BotService interface {
	ChooseCell(game *entity.Game, botMark string) (int, error)
}

type botService struct {
	rng *rand.Rand
}

// NewBotService - the rng is injected so bot play is reproducible under a
// fixed seed.
func NewBotService(rng *rand.Rand) BotService {
	return &botService{rng: rng}
}

// ChooseCell - picks a cell for the bot according to the game's mode.
func (that *botService) ChooseCell(game *entity.Game, botMark string) (int, error) {
	availableCells := game.EmptyCells()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	switch game.Mode {
	case entity.ModeRandom:
		return availableCells[that.rng.Intn(len(availableCells))], nil
	case entity.ModeOptimal:
		_, cell := tictactoe.BestMove(&game.Board, botMark, entity.ToggleMark(botMark))
		if cell < 0 {
			// the search has no move on a terminal position; pick like the random bot
			return availableCells[that.rng.Intn(len(availableCells))], nil
		}

		return cell, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedBotMode, game.Mode)
	}
}
