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
	"time"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

const (
	helpText       = "commands: 1-9 place your mark, restart, score, help, quit"
	endGameTimeout = 5 * time.Second
)

type gameManager interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, action entity.Action) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
	Score(ctx context.Context) (entity.Score, error)
	EndGame(ctx context.Context, gameID string) error
}

// Session is the interactive game loop on a terminal. One line is one command.
type Session struct {
	logger  *slog.Logger
	manager gameManager

	in  *bufio.Scanner
	out *termenv.Output
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Session {
	return &Session{
		logger:  logger.With("component", "console"),
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     termenv.NewOutput(out, opts...),
	}
}

// Run - plays until quit, end of input or cancellation of ctx. The live game is dropped
// from storage when Run returns.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	game, err := that.manager.NewGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	gameID := game.ID
	defer func() {
		that.endGame(ctx, gameID)
	}()

	that.printf("You play %s. %s\n", game.HumanMark, helpText)
	that.printGame(game)

	lines := that.readLines(ctx)

	for {
		var line string
		var ok bool

		select {
		case <-ctx.Done():
			log.Info("session canceled")
			return nil
		case line, ok = <-lines:
		}

		if ctx.Err() != nil {
			log.Info("session canceled")
			return nil
		}

		if !ok {
			if err = that.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		command := strings.ToLower(strings.TrimSpace(line))

		switch command {
		case "":
			continue
		case "quit", "exit":
			that.printf("Bye!\n")
			return nil
		case "help":
			that.printf("%s\n", helpText)
		case "score":
			if err = that.printScore(ctx); err != nil {
				return err
			}
		case "restart":
			if game, err = that.manager.Restart(ctx, game.ID); err != nil {
				return fmt.Errorf("failed to restart game: %w", err)
			}
			gameID = game.ID
			that.printGame(game)
		default:
			if game, err = that.play(ctx, game, command); err != nil {
				return err
			}
		}
	}
}

// readLines - feeds input lines to the returned channel until end of input or ctx is done.
// The channel is closed at end of input; Scanner.Err is safe to read after that.
func (that *Session) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		for that.in.Scan() {
			select {
			case lines <- that.in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

// endGame - removes the live game from storage; ctx may already be canceled by then.
func (that *Session) endGame(ctx context.Context, gameID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), endGameTimeout)
	defer cancel()

	if err := that.manager.EndGame(ctx, gameID); err != nil {
		that.logger.Error("failed to end game", "gameID", gameID, "error", err)
	}
}

// play - handles a cell number. Mistakes of the player are reported, not returned.
func (that *Session) play(ctx context.Context, game *entity.Game, command string) (*entity.Game, error) {
	number, err := strconv.Atoi(command)
	if err != nil {
		that.printf("unknown command %q, %s\n", command, helpText)
		return game, nil
	}

	action, err := entity.ActionFromIndex(number - 1)
	if err != nil {
		that.printf("pick a cell from 1 to 9\n")
		return game, nil
	}

	updated, err := that.manager.MakeTurn(ctx, game.ID, action)
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		that.printf("game is over, type restart to play again\n")
		return game, nil
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("cell %d is already occupied\n", number)
		return game, nil
	case errors.Is(err, apperror.ErrIllegalAction), errors.Is(err, apperror.ErrNotYourTurn):
		that.printf("%v\n", err)
		return game, nil
	case err != nil:
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	that.printGame(updated)

	return updated, nil
}

func (that *Session) printGame(game *entity.Game) {
	that.printf("\n%s\n", renderBoard(that.out, game.Board))

	if game.IsFinished() {
		that.printf("%s\n", renderResult(game))
	}
}

func (that *Session) printScore(ctx context.Context) error {
	score, err := that.manager.Score(ctx)
	if err != nil {
		return fmt.Errorf("failed to get score: %w", err)
	}

	that.printf("you %d, agent %d, draws %d\n", score.HumanWins, score.AgentWins, score.Draws)

	return nil
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write to console", "error", err)
	}
}
