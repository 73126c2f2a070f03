package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

var ErrInvalidMark = errors.New("invalid player mark")

// Tally counts the finished games of the current process run.
type Tally struct {
	WinsX int
	WinsO int
	Ties  int
}

type GameManager interface {
	NewSession(ctx context.Context, mode, humanMark string) (*entity.Game, error)
	RunGame(ctx context.Context, game *entity.Game, moves service.MoveProvider, renderer service.Renderer) error
	Tally(ctx context.Context) (Tally, error)
}

type gameManager struct {
	logger          *slog.Logger
	gameRepo        repository.GameRepository
	gamePlayService service.GamePlayService
}

func NewGameManager(logger *slog.Logger, gameRepo repository.GameRepository, gamePlayService service.GamePlayService) GameManager {
	return &gameManager{
		logger:          logger,
		gameRepo:        gameRepo,
		gamePlayService: gamePlayService,
	}
}

// NewSession - creates a fresh game for the chosen mode. In PvP both seats
// are human; against a bot the human keeps the chosen mark and the bot takes
// the other one. X always moves first either way.
func (that *gameManager) NewSession(ctx context.Context, mode, humanMark string) (*entity.Game, error) {
	if humanMark != entity.PlayerX && humanMark != entity.PlayerO {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMark, humanMark)
	}

	game := entity.NewGame(uuid.NewString(), mode)

	switch mode {
	case entity.ModePvP:
		game.Players = []*entity.Player{
			entity.NewHumanPlayer(uuid.NewString(), entity.PlayerX),
			entity.NewHumanPlayer(uuid.NewString(), entity.PlayerO),
		}
	case entity.ModeRandom, entity.ModeOptimal:
		game.Players = []*entity.Player{
			entity.NewHumanPlayer(uuid.NewString(), humanMark),
			entity.NewBotPlayer(uuid.NewString(), entity.ToggleMark(humanMark)),
		}
	default:
		return nil, fmt.Errorf("%w: %q", service.ErrUnsupportedBotMode, mode)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to store game: %w", err)
	}

	that.logger.Debug("session created", "gameID", game.ID, "mode", mode, "humanMark", humanMark)

	return game, nil
}

// RunGame - plays the game to its terminal outcome and records the result.
func (that *gameManager) RunGame(ctx context.Context, game *entity.Game, moves service.MoveProvider, renderer service.Renderer) error {
	if err := that.gamePlayService.PlayGame(ctx, game, moves, renderer); err != nil {
		return fmt.Errorf("failed to play game: %w", err)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gameManager) Tally(ctx context.Context) (Tally, error) {
	games, err := that.gameRepo.All(ctx)
	if err != nil {
		return Tally{}, fmt.Errorf("failed to list games: %w", err)
	}

	var tally Tally
	for _, game := range games {
		if !game.IsFinished() {
			continue
		}

		switch game.Winner {
		case entity.PlayerX:
			tally.WinsX++
		case entity.PlayerO:
			tally.WinsO++
		case entity.PlayerTie:
			tally.Ties++
		}
	}

	return tally, nil
}
