package agent

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueTable_Get(t *testing.T) {
	t.Run("Every pair reads zero before training", func(t *testing.T) {
		// Given: a fresh table
		table := NewValueTable()

		for key := range reachableBoards() {
			for row := 0; row < entity.BoardSize; row++ {
				for col := 0; col < entity.BoardSize; col++ {
					// When: looking up any pair
					value := table.Get(key, entity.Action{Row: row, Col: col})

					// Then: it reads zero
					require.InDelta(t, 0.0, value, 0)
				}
			}
		}

		assert.Equal(t, 0, table.Len())
	})

	t.Run("Set upserts", func(t *testing.T) {
		table := NewValueTable()
		action := entity.Action{Row: 1, Col: 1}

		table.Set("000000000", action, 0.3)
		table.Set("000000000", action, 0.4)

		assert.InDelta(t, 0.4, table.Get("000000000", action), 1e-12)
		assert.Equal(t, 1, table.Len())
	})
}

func TestValueTable_Update(t *testing.T) {
	t.Run("Single update from zero moves by alpha", func(t *testing.T) {
		// Given: an empty table and a winning move into a state with no known values
		table := NewValueTable()
		action := entity.Action{Row: 0, Col: 2}

		// When: updating with reward 1
		value, err := table.Update("110220000", action, 1, "111220000", DefaultAlpha, DefaultGamma)

		// Then: the new value equals alpha
		require.NoError(t, err)
		assert.InDelta(t, 0.1, value, 1e-12)
		assert.InDelta(t, 0.1, table.Get("110220000", action), 1e-12)
	})

	t.Run("Bootstraps from the best successor value", func(t *testing.T) {
		// Given: successor values 0.5 and -0.2
		table := NewValueTable()
		next := entity.StateKey("100000000")
		table.Set(next, entity.Action{Row: 1, Col: 1}, 0.5)
		table.Set(next, entity.Action{Row: 0, Col: 1}, -0.2)

		// When: updating with no reward
		value, err := table.Update("000000000", entity.Action{Row: 0, Col: 0}, 0, next, 0.5, 0.9)

		// Then: target is 0.9*0.5 and the step is half of it
		require.NoError(t, err)
		assert.InDelta(t, 0.225, value, 1e-12)
	})

	t.Run("Negative successor values are used as is", func(t *testing.T) {
		// Given: a successor whose only known value is negative and whose other actions are zero
		table := NewValueTable()
		next := entity.StateKey("121121210")
		table.Set(next, entity.Action{Row: 2, Col: 2}, -1)

		// When: updating
		value, err := table.Update("121121200", entity.Action{Row: 2, Col: 1}, 0, next, 1, 1)

		// Then: the single legal successor action drives the target
		require.NoError(t, err)
		assert.InDelta(t, -1.0, value, 1e-12)
	})

	t.Run("Full successor contributes zero", func(t *testing.T) {
		table := NewValueTable()

		value, err := table.Update("121121210", entity.Action{Row: 2, Col: 2}, 0.5, "121121212", DefaultAlpha, DefaultGamma)

		require.NoError(t, err)
		assert.InDelta(t, 0.05, value, 1e-12)
	})

	t.Run("Invalid successor key is an error", func(t *testing.T) {
		table := NewValueTable()

		_, err := table.Update("000000000", entity.Action{}, 0, "bad", DefaultAlpha, DefaultGamma)

		assert.ErrorIs(t, err, apperror.ErrInvalidState)
		assert.Equal(t, 0, table.Len())
	})
}
