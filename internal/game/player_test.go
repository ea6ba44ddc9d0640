package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hi-lo/internal/apperrors"
)

func TestNewPlayer(t *testing.T) {
	t.Parallel()

	// Name is trimmed
	p, err := NewPlayer("  Alice  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)

	// Empty or whitespace-only names are rejected
	_, err = NewPlayer("")
	assert.Equal(t, apperrors.ErrInvalidPlayerName, err)
	_, err = NewPlayer("   ")
	assert.Equal(t, apperrors.ErrInvalidPlayerName, err)
}

func TestSameName(t *testing.T) {
	t.Parallel()

	assert.True(t, SameName("Alice", "alice"))
	assert.True(t, SameName("BOB", "bob"))
	assert.False(t, SameName("Alice", "Bob"))
}
