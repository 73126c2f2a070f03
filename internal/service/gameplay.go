package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var ErrNoCurrentPlayer = errors.New("no player holds the current turn")

// MoveProvider supplies a validated empty-cell index for a human mover.
// Prompting, parsing and re-prompting are its job, not the state machine's.
type MoveProvider interface {
	NextCell(ctx context.Context, game *entity.Game, playerMark string) (int, error)
}

// Renderer is notified after every applied move; it must not mutate the game.
type Renderer interface {
	GameUpdated(game *entity.Game, mover *entity.Player, cell int)
}

type GamePlayService interface {
	PlayGame(ctx context.Context, game *entity.Game, moves MoveProvider, renderer Renderer) error
}

type gamePlayService struct {
	logger     *slog.Logger
	botService BotService
}

func NewGamePlayService(logger *slog.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger,
		botService: botService,
	}
}

// PlayGame - alternates turns until the game finishes. One move is processed
// at a time; the loop blocks on whichever collaborator supplies the next cell.
func (that *gamePlayService) PlayGame(ctx context.Context, game *entity.Game, moves MoveProvider, renderer Renderer) error {
	log := that.logger.With("method", "PlayGame", "gameID", game.ID)

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		mover := game.CurrentPlayer()
		if mover == nil {
			return fmt.Errorf("%w: %q", ErrNoCurrentPlayer, game.Turn)
		}

		var (
			cell int
			err  error
		)

		if mover.IsBot() {
			cell, err = that.botService.ChooseCell(game, mover.Mark)
			if err != nil {
				return fmt.Errorf("bot failed to choose cell: %w", err)
			}

			log.Debug("bot chose cell", "mark", mover.Mark, "cell", cell)
		} else {
			cell, err = moves.NextCell(ctx, game, mover.Mark)
			if err != nil {
				return fmt.Errorf("failed to get next move: %w", err)
			}
		}

		if err = tictactoe.MakeTurn(game, mover.Mark, cell); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		renderer.GameUpdated(game, mover, cell)
	}

	log.Debug("game finished", "winner", game.Winner)

	return nil
}
