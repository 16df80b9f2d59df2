package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	first, err := GenerateGameID()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	seen := map[string]bool{first: true}
	for i := 0; i < 10; i++ {
		id, err := GenerateGameID()
		require.NoError(t, err)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1)
}
