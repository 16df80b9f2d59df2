package console

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

const (
	colorX = "9"
	colorO = "12"
)

// renderBoard - draws the grid; empty squares show their keypad number.
func renderBoard(out *termenv.Output, board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < entity.BoardSize; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < entity.BoardSize; col++ {
			if col > 0 {
				sb.WriteString("|")
			}

			sb.WriteString(" ")
			sb.WriteString(renderCell(out, board[row][col], row*entity.BoardSize+col+1))
			sb.WriteString(" ")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func renderCell(out *termenv.Output, cell entity.Cell, number int) string {
	switch cell {
	case entity.PlayerX:
		return out.String(cell.String()).Foreground(out.Color(colorX)).Bold().String()
	case entity.PlayerO:
		return out.String(cell.String()).Foreground(out.Color(colorO)).Bold().String()
	default:
		return out.String(strconv.Itoa(number)).Faint().String()
	}
}

func renderResult(game *entity.Game) string {
	if game.IsTie() {
		return "Draw!"
	}

	return game.Winner + " wins!"
}
