package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
)

const BoardSize = 3

// Cell holds one square of the board. The numeric values matter: Evaluate sums them.
type Cell int8

const (
	Empty   Cell = 0
	PlayerX Cell = 1
	PlayerO Cell = -1
)

// Opponent - returns the mark of the other side.
func (that Cell) Opponent() Cell {
	return -that
}

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// ParseMark - converts "X" or "O" to a player cell.
func ParseMark(mark string) (Cell, error) {
	switch strings.ToUpper(mark) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: unknown mark %q", apperror.ErrIllegalAction, mark)
	}
}

// Action is a (row, column) coordinate of the board.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ActionFromIndex - maps a row-major index in [0, 9) to an action.
func ActionFromIndex(index int) (Action, error) {
	if index < 0 || index >= BoardSize*BoardSize {
		return Action{}, fmt.Errorf("%w: cell %d", apperror.ErrIllegalAction, index)
	}

	return Action{Row: index / BoardSize, Col: index % BoardSize}, nil
}

func (that Action) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Action) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Action) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// StateKey is the row-major textual encoding of a board: '0' empty, '1' X, '2' O.
type StateKey string

// Board is a 3x3 grid. It is a value: whoever drives a game owns its own copy.
type Board [BoardSize][BoardSize]Cell

// StateKey - encodes the board.
func (that Board) StateKey() StateKey {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)

	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case PlayerX:
				sb.WriteByte('1')
			case PlayerO:
				sb.WriteByte('2')
			default:
				sb.WriteByte('0')
			}
		}
	}

	return StateKey(sb.String())
}

// Decode - inverse of Board.StateKey.
func Decode(key StateKey) (Board, error) {
	var board Board

	if len(key) != BoardSize*BoardSize {
		return board, fmt.Errorf("%w: %q has length %d", apperror.ErrInvalidState, key, len(key))
	}

	for i := 0; i < len(key); i++ {
		var cell Cell

		switch key[i] {
		case '0':
			cell = Empty
		case '1':
			cell = PlayerX
		case '2':
			cell = PlayerO
		default:
			return Board{}, fmt.Errorf("%w: %q has character %q", apperror.ErrInvalidState, key, key[i])
		}

		board[i/BoardSize][i%BoardSize] = cell
	}

	return board, nil
}

// LegalActions - decodes the key and lists its empty cells in row-major order.
func LegalActions(key StateKey) ([]Action, error) {
	board, err := Decode(key)
	if err != nil {
		return nil, err
	}

	return board.LegalActions(), nil
}

func (that Board) LegalActions() []Action {
	actions := make([]Action, 0, BoardSize*BoardSize)

	for row := range that {
		for col, cell := range that[row] {
			if cell == Empty {
				actions = append(actions, Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Turn - returns the side to move. X always opens, so equal counts mean X.
func (that Board) Turn() Cell {
	var balance int

	for _, row := range that {
		for _, cell := range row {
			balance += int(cell)
		}
	}

	if balance == 0 {
		return PlayerX
	}

	return PlayerO
}

func (that Board) At(action Action) Cell {
	return that[action.Row][action.Col]
}

// Apply - places the player's mark on an empty in-range cell.
func (that *Board) Apply(action Action, player Cell) error {
	if !action.InRange() {
		return fmt.Errorf("%w: %s is out of range", apperror.ErrIllegalAction, action)
	}

	if player != PlayerX && player != PlayerO {
		return fmt.Errorf("%w: %d is not a player", apperror.ErrIllegalAction, player)
	}

	if that.At(action) != Empty {
		return fmt.Errorf("%w: %w: %s", apperror.ErrIllegalAction, apperror.ErrCellOccupied, action)
	}

	that[action.Row][action.Col] = player

	return nil
}
