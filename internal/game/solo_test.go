package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hi-lo/internal/apperrors"
)

func TestSolo_GuessWalkthrough(t *testing.T) {
	t.Parallel()

	s := NewSolo(mustPlayer(t, "Alice"), mustRange(t, 1, 10), 7)

	res, err := s.Guess(3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeHigher, res.Outcome)
	assert.Equal(t, 1, res.Attempts)
	assert.False(t, res.Won)

	res, err = s.Guess(9)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLower, res.Outcome)
	assert.Equal(t, 2, res.Attempts)

	res, err = s.Guess(7)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, res.Outcome)
	assert.True(t, res.Won)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, "Congratulations! You found the mystery number: 7!", res.Message)
	assert.True(t, s.Match.Completed)
}

func TestSolo_GuessAfterWin(t *testing.T) {
	t.Parallel()

	s := NewSolo(mustPlayer(t, "Alice"), mustRange(t, 1, 10), 7)
	_, err := s.Guess(7)
	require.NoError(t, err)

	_, err = s.Guess(5)
	assert.Equal(t, apperrors.ErrGameCompleted, err)
}

func TestSolo_GuessOutOfRange(t *testing.T) {
	t.Parallel()

	s := NewSolo(mustPlayer(t, "Alice"), mustRange(t, 1, 10), 7)

	_, err := s.Guess(11)
	require.Error(t, err)
	gameErr, ok := err.(*apperrors.GameError)
	require.True(t, ok)
	assert.Contains(t, gameErr.Message, "[1 - 10]")

	// Rejected guess does not count as an attempt
	res, err := s.Guess(5)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Attempts)
}
