package room

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hi-lo/internal/apperrors"
)

// Two connections guess the mystery number at the same instant.
// Exactly one of them wins; the other is told the game already ended.
func TestOrchestrator_ConcurrentWinningGuesses(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		o := newTestOrchestrator(7)
		r := setupMatch(t, o)

		var wg sync.WaitGroup
		results := make(map[string]bool, 2)
		errs := make(map[string]*apperrors.GameError, 2)
		var mu sync.Mutex

		for _, connID := range []string{"conn-a", "conn-b"} {
			wg.Add(1)
			go func(connID string) {
				defer wg.Done()
				res, _, gameErr := o.ProcessGuess(r.ID, connID, 7)
				mu.Lock()
				defer mu.Unlock()
				if gameErr != nil {
					errs[connID] = gameErr
				} else {
					results[connID] = res.Won
				}
			}(connID)
		}
		wg.Wait()

		require.Len(t, results, 1, "exactly one guess should be accepted")
		require.Len(t, errs, 1)
		for _, won := range results {
			assert.True(t, won)
		}
		for _, gameErr := range errs {
			assert.Equal(t, apperrors.ErrGameCompleted, gameErr)
		}
		assert.Equal(t, 1, r.GamesPlayed)
	}
}

// Concurrent joins into a single free seat never overfill the room.
func TestOrchestrator_ConcurrentJoins(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r, _, gameErr := o.CreateRoom("test", "Host", 1, 10, 3, "conn-h")
	require.Nil(t, gameErr)

	const joiners = 8
	var wg sync.WaitGroup
	var okCount, fullCount int
	var mu sync.Mutex

	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := string(rune('A' + i))
			_, _, gameErr := o.JoinRoom(r.ID, name, "conn-"+name)
			mu.Lock()
			defer mu.Unlock()
			if gameErr == nil {
				okCount++
			} else if gameErr == apperrors.ErrRoomFull {
				fullCount++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, okCount)
	assert.Equal(t, joiners-1, fullCount)
	assert.Len(t, r.Members, 2)
}
