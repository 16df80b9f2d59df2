package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Action, error)
}

type moveSelector interface {
	SelectMove(board entity.Board, explorationRate float64) (entity.Action, bool, error)
}

type botService struct {
	agent           moveSelector
	explorationRate float64
}

func NewBotService(agent moveSelector, explorationRate float64) BotService {
	return &botService{
		agent:           agent,
		explorationRate: explorationRate,
	}
}

// MakeTurn - asks the agent for a move and plays it with the agent's mark.
func (that *botService) MakeTurn(game *entity.Game) (entity.Action, error) {
	action, ok, err := that.agent.SelectMove(game.Board, that.explorationRate)
	if err != nil {
		return entity.Action{}, fmt.Errorf("failed to select move: %w", err)
	}

	if !ok {
		return entity.Action{}, ErrNoAvailableMoves
	}

	if err = game.MakeTurn(game.AgentMark, action); err != nil {
		return entity.Action{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return action, nil
}
