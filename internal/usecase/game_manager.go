package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type scoreRepo interface {
	Record(ctx context.Context, game *entity.Game) error
	Get(ctx context.Context) (entity.Score, error)
}

type botService interface {
	MakeTurn(game *entity.Game) (entity.Action, error)
}

// GameManager runs interactive games between a human and the agent.
type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	scoreRepo scoreRepo
	bot       botService
	agentMark entity.Cell
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, scoreRepo scoreRepo, bot botService, agentMark entity.Cell) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		gameRepo:  gameRepo,
		scoreRepo: scoreRepo,
		bot:       bot,
		agentMark: agentMark,
	}
}

// NewGame - starts a game. When the agent plays X it opens right away.
func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, that.agentMark)

	if game.IsAgentTurn() {
		if _, err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID, "agent", game.AgentMark.String())

	return game, nil
}

// MakeTurn - plays the human's move and, if the game goes on, the agent's reply.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, action entity.Action) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(game.HumanMark, action); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsAgentTurn() {
		if _, err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		that.finishGame(ctx, game)
	}

	return game, nil
}

// Restart - drops the game and starts a new one.
func (that *GameManager) Restart(ctx context.Context, gameID string) (*entity.Game, error) {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	return that.NewGame(ctx)
}

// EndGame - drops the game when the session is over. A game already gone is not an error.
func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	err := that.gameRepo.DeleteByID(ctx, gameID)
	if err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Debug("game ended", "gameID", gameID)

	return nil
}

func (that *GameManager) Score(ctx context.Context) (entity.Score, error) {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) finishGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finishGame", "gameID", game.ID)

	if err := that.scoreRepo.Record(ctx, game); err != nil {
		log.Error("failed to record score", "error", err)
	}

	log.Info("game finished", "winner", game.Winner)
}
