package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hi-lo/internal/apperrors"
)

func TestNewRange_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max int
	}{
		{"classic 1-100", 1, 100},
		{"minimal size", 1, 3},
		{"negative bounds", -10, 10},
		{"both negative", -100, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := NewRange(tt.min, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.min, r.Min)
			assert.Equal(t, tt.max, r.Max)
		})
	}
}

func TestNewRange_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max int
		wantErr  error
	}{
		{"min equals max", 5, 5, apperrors.ErrInvalidRange},
		{"min greater than max", 10, 1, apperrors.ErrInvalidRange},
		{"only two values", 1, 2, apperrors.ErrRangeTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewRange(tt.min, tt.max)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestRange_Contains(t *testing.T) {
	t.Parallel()

	r, err := NewRange(1, 10)
	require.NoError(t, err)

	// Bounds are inclusive
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(11))
}

func TestRange_Size(t *testing.T) {
	t.Parallel()

	r, err := NewRange(1, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, r.Size())

	r, err = NewRange(-5, 5)
	require.NoError(t, err)
	assert.Equal(t, 11, r.Size())
}

func TestRange_String(t *testing.T) {
	t.Parallel()

	r, err := NewRange(1, 100)
	require.NoError(t, err)
	assert.Equal(t, "[1 - 100]", r.String())
}
