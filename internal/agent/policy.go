package agent

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

// Decision is a chosen move. Defensive is set only when the move was picked because it
// blocks an immediate win of the opponent.
type Decision struct {
	Action    entity.Action
	Defensive bool
}

// Policy is epsilon-greedy over a ValueTable with a tactical block check in front.
type Policy struct {
	table *ValueTable
	rng   *rand.Rand
}

func NewPolicy(table *ValueTable, rng *rand.Rand) *Policy {
	return &Policy{
		table: table,
		rng:   rng,
	}
}

// ChooseAction - picks a move for the side to move on board. Returns false when the board
// has no empty cell.
//
// With probability 1-epsilon a cell that stops the opponent from winning next move is
// played first, even when the mover could win on the spot. Otherwise, with probability
// epsilon a random legal move is played, else the best valued one (first in row-major
// order on ties).
func (that *Policy) ChooseAction(board entity.Board, epsilon float64) (Decision, bool) {
	actions := board.LegalActions()
	if len(actions) == 0 {
		return Decision{}, false
	}

	mover := board.Turn()

	if that.rng.Float64() >= epsilon {
		if block, ok := BlockingMove(board, mover); ok {
			return Decision{Action: block, Defensive: true}, true
		}
	}

	if that.rng.Float64() < epsilon {
		return Decision{Action: actions[that.rng.Intn(len(actions))]}, true
	}

	state := board.StateKey()
	best := actions[0]
	bestValue := that.table.Get(state, best)
	for _, action := range actions[1:] {
		if value := that.table.Get(state, action); value > bestValue {
			best, bestValue = action, value
		}
	}

	return Decision{Action: best}, true
}

// BlockingMove - finds the first empty cell, row-major, where the opponent of mover would
// complete a line.
func BlockingMove(board entity.Board, mover entity.Cell) (entity.Action, bool) {
	opponent := mover.Opponent()

	for row := range board {
		for col := range board[row] {
			if board[row][col] != entity.Empty {
				continue
			}

			board[row][col] = opponent
			threat := entity.Evaluate(board).IsWinFor(opponent)
			board[row][col] = entity.Empty

			if threat {
				return entity.Action{Row: row, Col: col}, true
			}
		}
	}

	return entity.Action{}, false
}
