package entity

type OutcomeStatus int

const (
	Ongoing OutcomeStatus = iota
	Draw
	Win
)

// Outcome is derived from a board snapshot and never stored. Winner is set only for Win.
type Outcome struct {
	Status OutcomeStatus
	Winner Cell
}

func (that Outcome) IsOngoing() bool {
	return that.Status == Ongoing
}

func (that Outcome) IsWinFor(player Cell) bool {
	return that.Status == Win && that.Winner == player
}

func (that Outcome) String() string {
	switch that.Status {
	case Win:
		return that.Winner.String() + " wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Evaluate - reports a win, a draw or an ongoing game.
//
// Lines are checked rows first, then columns, the main diagonal and the anti-diagonal.
// A line is complete when the absolute sum of its cells is 3. That only holds because
// cells are restricted to {-1, 0, +1} and a line has exactly three cells; it does not
// carry over to other board sizes or encodings.
func Evaluate(board Board) Outcome {
	for row := 0; row < BoardSize; row++ {
		if won, winner := lineWinner(board[row][0], board[row][1], board[row][2]); won {
			return Outcome{Status: Win, Winner: winner}
		}
	}

	for col := 0; col < BoardSize; col++ {
		if won, winner := lineWinner(board[0][col], board[1][col], board[2][col]); won {
			return Outcome{Status: Win, Winner: winner}
		}
	}

	if won, winner := lineWinner(board[0][0], board[1][1], board[2][2]); won {
		return Outcome{Status: Win, Winner: winner}
	}

	if won, winner := lineWinner(board[0][2], board[1][1], board[2][0]); won {
		return Outcome{Status: Win, Winner: winner}
	}

	// the game continues while any square is empty
	for _, row := range board {
		for _, cell := range row {
			if cell == Empty {
				return Outcome{Status: Ongoing}
			}
		}
	}

	return Outcome{Status: Draw}
}

func lineWinner(a, b, c Cell) (bool, Cell) {
	switch int(a) + int(b) + int(c) {
	case 3:
		return true, PlayerX
	case -3:
		return true, PlayerO
	default:
		return false, Empty
	}
}
