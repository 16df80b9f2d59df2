package agent

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

// Params tunes learning. Every value is used as given, so gamma 0 or a greedy training run
// are possible; only a zero Seed is replaced by a time based one.
type Params struct {
	Alpha          float64
	Gamma          float64
	TrainEpsilon   float64
	ReportInterval int
	Seed           int64
}

// DefaultParams - alpha 0.1, gamma 0.9, training epsilon 0.2, time based seed.
func DefaultParams() Params {
	return Params{
		Alpha:        DefaultAlpha,
		Gamma:        DefaultGamma,
		TrainEpsilon: DefaultTrainEpsilon,
	}
}

func (that Params) withSeed() Params {
	if that.Seed == 0 {
		that.Seed = time.Now().UnixNano()
	}
	return that
}

// Agent is the automated opponent: train once with Initialize, then ask SelectMove.
type Agent struct {
	logger *slog.Logger

	table   *ValueTable
	policy  *Policy
	trainer *Trainer
	trained bool
}

func New(logger *slog.Logger, params Params) *Agent {
	params = params.withSeed()

	table := NewValueTable()
	policy := NewPolicy(table, rand.New(rand.NewSource(params.Seed))) //nolint: gosec // it's ok

	return &Agent{
		logger:  logger.With("component", "agent"),
		table:   table,
		policy:  policy,
		trainer: NewTrainer(logger, table, policy, params),
	}
}

// Initialize - trains the agent by self-play. Must run before SelectMove. An interrupted
// run leaves the agent untrained.
func (that *Agent) Initialize(ctx context.Context, episodes int) (TrainingStats, error) {
	stats, err := that.trainer.Train(ctx, episodes)
	if err != nil {
		return stats, fmt.Errorf("failed to train agent: %w", err)
	}

	that.trained = true

	return stats, nil
}

// SelectMove - picks the move for the side to move on board. Returns false on a full board.
func (that *Agent) SelectMove(board entity.Board, explorationRate float64) (entity.Action, bool, error) {
	if !that.trained {
		return entity.Action{}, false, apperror.ErrAgentNotTrained
	}

	decision, ok := that.policy.ChooseAction(board, explorationRate)
	if ok {
		that.logger.Debug("move selected", "state", board.StateKey(), "action", decision.Action, "defensive", decision.Defensive)
	}

	return decision.Action, ok, nil
}

func (that *Agent) Evaluate(board entity.Board) entity.Outcome {
	return entity.Evaluate(board)
}

// ApplyMove - places player's mark; occupied or out-of-range cells are rejected.
func (that *Agent) ApplyMove(board *entity.Board, action entity.Action, player entity.Cell) error {
	if err := board.Apply(action, player); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	return nil
}

// Value - returns the learned estimate for a state and action.
func (that *Agent) Value(state entity.StateKey, action entity.Action) float64 {
	return that.table.Get(state, action)
}
