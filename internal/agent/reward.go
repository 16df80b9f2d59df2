package agent

import "github.com/rocketscienceinc/tictactoe-agent/internal/entity"

const (
	RewardWin          = 1.0
	RewardDraw         = 0.5
	RewardDefendedLoss = 0.7
	RewardLoss         = -1.0
)

// Reward - scores an outcome from the mover's side. A loss right after a forced block is
// punished less than an unguarded one.
func Reward(outcome entity.Outcome, mover entity.Cell, defensive bool) float64 {
	switch {
	case outcome.IsWinFor(mover):
		return RewardWin
	case outcome.Status == entity.Draw:
		return RewardDraw
	case outcome.IsWinFor(mover.Opponent()):
		if defensive {
			return RewardDefendedLoss
		}
		return RewardLoss
	default:
		return 0
	}
}
