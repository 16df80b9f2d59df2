package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	WinnerTie = "-"
)

// Game is one interactive session between a human and the agent.
type Game struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	Turn      Cell   `json:"turn"`
	Winner    string `json:"winner"`
	Status    string `json:"status"`
	HumanMark Cell   `json:"human_mark"`
	AgentMark Cell   `json:"agent_mark"`
}

func NewGame(id string, agentMark Cell) *Game {
	return &Game{
		ID:        id,
		Board:     Board{},
		Turn:      PlayerX,
		Status:    StatusOngoing,
		HumanMark: agentMark.Opponent(),
		AgentMark: agentMark,
	}
}

// UpdateGameState - derives status and winner from the board.
func (that *Game) UpdateGameState() Outcome {
	outcome := Evaluate(that.Board)

	switch outcome.Status {
	// one player wins
	case Win:
		that.Winner = outcome.Winner.String()
		that.Status = StatusFinished
		that.Turn = Empty
	// tie
	case Draw:
		that.Winner = WinnerTie
		that.Status = StatusFinished
		that.Turn = Empty
	// game continue
	default:
		that.Status = StatusOngoing
	}

	return outcome
}

// MakeTurn - places the mark of the player whose turn it is and passes the turn.
func (that *Game) MakeTurn(player Cell, action Action) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Apply(action, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Turn = player.Opponent()
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsAgentTurn() bool {
	return !that.IsFinished() && that.Turn == that.AgentMark
}

// AgentWon - reports whether the finished game went to the agent.
func (that *Game) AgentWon() bool {
	return that.IsFinished() && that.Winner == that.AgentMark.String()
}

func (that *Game) HumanWon() bool {
	return that.IsFinished() && that.Winner == that.HumanMark.String()
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == WinnerTie
}
