package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

type gameUseCase interface {
	NewSession(ctx context.Context, mode, humanMark string) (*entity.Game, error)
	RunGame(ctx context.Context, game *entity.Game, moves service.MoveProvider, renderer service.Renderer) error
	Tally(ctx context.Context) (usecase.Tally, error)
}

// Server drives the whole console session: configuration prompts, move
// input, rendering and the replay loop. It is the MoveProvider and Renderer
// collaborator of the gameplay service.
type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	reader      *bufio.Reader
	writer      io.Writer
}

func New(logger *slog.Logger, gameUseCase gameUseCase, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:      logger,
		gameUseCase: gameUseCase,
		reader:      bufio.NewReader(in),
		writer:      out,
	}
}

// Start - runs game sessions until the player declines a replay.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("component", "console")

	fmt.Fprintln(that.writer, "Welcome to Tic-Tac-Toe!")

	for {
		if err := that.playSession(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("session failed: %w", err)
		}

		again, err := that.askReplay(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("failed to read replay answer: %w", err)
		}

		if !again {
			break
		}

		log.Debug("starting a new session")
	}

	fmt.Fprintln(that.writer, "Thanks for playing!")

	return nil
}

func (that *Server) playSession(ctx context.Context) error {
	mode, err := that.askGameMode(ctx)
	if err != nil {
		return err
	}

	humanMark, err := that.askPlayerMark(ctx)
	if err != nil {
		return err
	}

	game, err := that.gameUseCase.NewSession(ctx, mode, humanMark)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if mode == entity.ModePvP {
		fmt.Fprintln(that.writer, "\nStarting Player vs Player")
	} else {
		fmt.Fprintf(that.writer, "\nStarting Player vs Bot (%s)\n", mode)
		fmt.Fprintf(that.writer, "You are %s, Bot is %s\n", humanMark, entity.ToggleMark(humanMark))
	}

	that.renderBoard(game.Board)

	if err = that.gameUseCase.RunGame(ctx, game, that, that); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}

	that.announceResult(game)

	if err = that.printTally(ctx); err != nil {
		return err
	}

	return nil
}

// NextCell - prompts until the mover names a free cell. Positions are 1-based
// on the console and 0-based internally.
func (that *Server) NextCell(ctx context.Context, game *entity.Game, playerMark string) (int, error) {
	for {
		fmt.Fprintf(that.writer, "Player %s, enter position (1-9): ", playerMark)

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		position, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(that.writer, "Please enter a number 1-9.")
			continue
		}

		if position < 1 || position > 9 {
			fmt.Fprintln(that.writer, "Choose a number from 1 to 9.")
			continue
		}

		cell := position - 1
		if game.Board[cell] != entity.EmptyCell {
			fmt.Fprintln(that.writer, "Position occupied. Choose another.")
			continue
		}

		return cell, nil
	}
}

// GameUpdated - announces bot moves and redraws the board.
func (that *Server) GameUpdated(game *entity.Game, mover *entity.Player, cell int) {
	if mover.IsBot() {
		fmt.Fprintln(that.writer, "Bot is thinking...")
		fmt.Fprintf(that.writer, "Bot chooses position %d\n", cell+1)
	}

	that.renderBoard(game.Board)
}

func (that *Server) announceResult(game *entity.Game) {
	if game.Winner == entity.PlayerTie {
		fmt.Fprintln(that.writer, "It's a draw!")
		return
	}

	fmt.Fprintf(that.writer, "Player %s wins!\n", game.Winner)
}

func (that *Server) printTally(ctx context.Context) error {
	tally, err := that.gameUseCase.Tally(ctx)
	if err != nil {
		return fmt.Errorf("failed to get tally: %w", err)
	}

	fmt.Fprintf(that.writer, "Score so far - X: %d, O: %d, draws: %d\n", tally.WinsX, tally.WinsO, tally.Ties)

	return nil
}

func (that *Server) askGameMode(ctx context.Context) (string, error) {
	fmt.Fprintln(that.writer, "\nChoose mode:")
	fmt.Fprintln(that.writer, "1 - Player vs Player")
	fmt.Fprintln(that.writer, "2 - Player vs Bot (random moves)")
	fmt.Fprintln(that.writer, "3 - Player vs Bot (perfect AI)")

	for {
		fmt.Fprint(that.writer, "Enter 1, 2, or 3: ")

		line, err := that.readLine(ctx)
		if err != nil {
			return "", err
		}

		switch line {
		case "1":
			return entity.ModePvP, nil
		case "2":
			return entity.ModeRandom, nil
		case "3":
			return entity.ModeOptimal, nil
		default:
			fmt.Fprintln(that.writer, "Invalid selection.")
		}
	}
}

func (that *Server) askPlayerMark(ctx context.Context) (string, error) {
	for {
		fmt.Fprint(that.writer, "Choose X or O (X plays first): ")

		line, err := that.readLine(ctx)
		if err != nil {
			return "", err
		}

		switch strings.ToUpper(line) {
		case entity.PlayerX:
			return entity.PlayerX, nil
		case entity.PlayerO:
			return entity.PlayerO, nil
		default:
			fmt.Fprintln(that.writer, "Invalid. Enter X or O.")
		}
	}
}

func (that *Server) askReplay(ctx context.Context) (bool, error) {
	for {
		fmt.Fprint(that.writer, "Play again? (y/n): ")

		line, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			fmt.Fprintln(that.writer, "Enter y or n.")
		}
	}
}

func (that *Server) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("input interrupted: %w", err)
	}

	line, err := that.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
