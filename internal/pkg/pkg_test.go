package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	// When: two ids are generated
	first, err := GenerateGameID()
	require.NoError(t, err)

	second, err := GenerateGameID()
	require.NoError(t, err)

	// Then: both are valid and distinct
	_, err = uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestNewRandomizer(t *testing.T) {
	randomizer := NewRandomizer()

	seen := make(map[int]bool)
	for range 200 {
		value := randomizer.IntN(2)
		require.Contains(t, []int{0, 1}, value)
		seen[value] = true
	}

	// Then: both outcomes appear
	assert.Len(t, seen, 2)
}
