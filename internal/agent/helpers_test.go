package agent

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

const testSeed = 42

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func testParams() Params {
	params := DefaultParams()
	params.Seed = testSeed
	return params
}

func newTestPolicy(table *ValueTable) *Policy {
	return NewPolicy(table, rand.New(rand.NewSource(testSeed))) //nolint: gosec // it's ok
}

// reachableBoards - every position reachable from the empty board by legal play.
func reachableBoards() map[entity.StateKey]entity.Board {
	seen := make(map[entity.StateKey]entity.Board)

	var walk func(board entity.Board)
	walk = func(board entity.Board) {
		key := board.StateKey()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = board

		if !entity.Evaluate(board).IsOngoing() {
			return
		}

		mover := board.Turn()
		for _, action := range board.LegalActions() {
			next := board
			next[action.Row][action.Col] = mover
			walk(next)
		}
	}

	walk(entity.Board{})

	return seen
}
