package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

const DefaultTrainEpsilon = 0.2

// TrainingStats aggregates a training run. Individual episodes are not kept.
type TrainingStats struct {
	Episodes  int
	XWins     int
	OWins     int
	Draws     int
	TableSize int
	Duration  time.Duration
}

// Trainer plays the policy against itself and feeds every transition to the value table.
type Trainer struct {
	logger *slog.Logger

	table  *ValueTable
	policy *Policy

	alpha          float64
	gamma          float64
	epsilon        float64
	reportInterval int
}

func NewTrainer(logger *slog.Logger, table *ValueTable, policy *Policy, params Params) *Trainer {
	return &Trainer{
		logger:         logger.With("component", "trainer"),
		table:          table,
		policy:         policy,
		alpha:          params.Alpha,
		gamma:          params.Gamma,
		epsilon:        params.TrainEpsilon,
		reportInterval: params.ReportInterval,
	}
}

// Train - runs the given number of self-play episodes to completion. Cancellation of ctx
// is checked between episodes.
func (that *Trainer) Train(ctx context.Context, episodes int) (TrainingStats, error) {
	log := that.logger.With("method", "Train")

	stats := TrainingStats{}
	start := time.Now()

	log.Info("Starting self-play training", "episodes", episodes, "epsilon", that.epsilon)

	for episode := 1; episode <= episodes; episode++ {
		if err := ctx.Err(); err != nil {
			stats.TableSize = that.table.Len()
			stats.Duration = time.Since(start)
			return stats, fmt.Errorf("training interrupted after %d episodes: %w", stats.Episodes, err)
		}

		outcome, err := that.playEpisode()
		if err != nil {
			return stats, fmt.Errorf("episode %d failed: %w", episode, err)
		}

		stats.Episodes++
		switch {
		case outcome.IsWinFor(entity.PlayerX):
			stats.XWins++
		case outcome.IsWinFor(entity.PlayerO):
			stats.OWins++
		default:
			stats.Draws++
		}

		if that.reportInterval > 0 && episode%that.reportInterval == 0 {
			log.Info("training progress",
				"episodes", episode,
				"table_size", that.table.Len(),
				"x_wins", stats.XWins,
				"o_wins", stats.OWins,
				"draws", stats.Draws,
			)
		}
	}

	stats.TableSize = that.table.Len()
	stats.Duration = time.Since(start)

	log.Info("training finished", "episodes", stats.Episodes, "table_size", stats.TableSize, "duration", stats.Duration)

	return stats, nil
}

// playEpisode - plays one game from an empty board, X first, and returns its result.
func (that *Trainer) playEpisode() (entity.Outcome, error) {
	board := entity.Board{}
	state := board.StateKey()

	for {
		mover := board.Turn()

		decision, ok := that.policy.ChooseAction(board, that.epsilon)
		if !ok {
			return entity.Evaluate(board), nil
		}

		if err := board.Apply(decision.Action, mover); err != nil {
			return entity.Outcome{}, fmt.Errorf("policy chose an illegal move: %w", err)
		}

		next := board.StateKey()
		outcome := entity.Evaluate(board)
		reward := Reward(outcome, mover, decision.Defensive)

		if _, err := that.table.Update(state, decision.Action, reward, next, that.alpha, that.gamma); err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to update value table: %w", err)
		}

		if !outcome.IsOngoing() {
			return outcome, nil
		}

		state = next
	}
}
