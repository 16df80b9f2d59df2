package agent

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

const (
	DefaultAlpha = 0.1
	DefaultGamma = 0.9
)

type tableKey struct {
	state  entity.StateKey
	action entity.Action
}

// ValueTable is a sparse Q-table. Unseen pairs read as zero; entries are created on first
// write and never removed. It has a single owner at a time and does no locking.
type ValueTable struct {
	values map[tableKey]float64
}

func NewValueTable() *ValueTable {
	return &ValueTable{
		values: make(map[tableKey]float64),
	}
}

func (that *ValueTable) Get(state entity.StateKey, action entity.Action) float64 {
	return that.values[tableKey{state: state, action: action}]
}

func (that *ValueTable) Set(state entity.StateKey, action entity.Action, value float64) {
	that.values[tableKey{state: state, action: action}] = value
}

// Len - returns the number of stored pairs.
func (that *ValueTable) Len() int {
	return len(that.values)
}

// Update - applies one step of tabular Q-learning and returns the new estimate.
// The target bootstraps from the best value of the successor state, 0 when it has no
// legal actions, whatever the policy ends up playing there.
func (that *ValueTable) Update(state entity.StateKey, action entity.Action, reward float64, next entity.StateKey, alpha, gamma float64) (float64, error) {
	nextActions, err := entity.LegalActions(next)
	if err != nil {
		return 0, fmt.Errorf("failed to list successor actions: %w", err)
	}

	var maxNext float64
	for i, nextAction := range nextActions {
		value := that.Get(next, nextAction)
		if i == 0 || value > maxNext {
			maxNext = value
		}
	}

	current := that.Get(state, action)
	updated := current + alpha*(reward+gamma*maxNext-current)
	that.Set(state, action, updated)

	return updated, nil
}
