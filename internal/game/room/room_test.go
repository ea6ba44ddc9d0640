package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hi-lo/internal/apperrors"
	"github.com/palemoky/hi-lo/internal/game"
)

func testRange(t *testing.T) game.Range {
	t.Helper()
	r, err := game.NewRange(1, 10)
	require.NoError(t, err)
	return r
}

func testPlayer(t *testing.T, name string) game.Player {
	t.Helper()
	p, err := game.NewPlayer(name)
	require.NoError(t, err)
	return p
}

// newTestRoom creates a room with both players joined and the match started.
func newTestRoom(t *testing.T, mystery int) (*Room, *Member, *Member) {
	t.Helper()
	r := NewRoom("test", testRange(t), 3)

	alice, err := r.Join(testPlayer(t, "Alice"))
	require.NoError(t, err)
	alice.ConnID = "conn-a"

	bob, err := r.Join(testPlayer(t, "Bob"))
	require.NoError(t, err)
	bob.ConnID = "conn-b"

	r.StartMatch(mystery)
	return r, alice, bob
}

func TestRoom_Join(t *testing.T) {
	t.Parallel()

	r := NewRoom("test", testRange(t), 3)

	_, err := r.Join(testPlayer(t, "Alice"))
	require.NoError(t, err)
	assert.False(t, r.IsFull())
	assert.False(t, r.CanStart())

	_, err = r.Join(testPlayer(t, "Bob"))
	require.NoError(t, err)
	assert.True(t, r.IsFull())
	assert.True(t, r.CanStart())

	// Third player is rejected
	_, err = r.Join(testPlayer(t, "Carol"))
	assert.Equal(t, apperrors.ErrRoomFull, err)
}

func TestRoom_Join_DuplicateName(t *testing.T) {
	t.Parallel()

	r := NewRoom("test", testRange(t), 3)
	_, err := r.Join(testPlayer(t, "Alice"))
	require.NoError(t, err)

	// Same name, different casing
	_, err = r.Join(testPlayer(t, "alice"))
	require.Error(t, err)
	gameErr, ok := err.(*apperrors.GameError)
	require.True(t, ok)
	assert.Contains(t, gameErr.Message, "alice")
}

func TestRoom_Join_AfterStart(t *testing.T) {
	t.Parallel()

	r := NewRoom("test", testRange(t), 3)
	r.MaxPlayers = 3 // leave a seat open so the full check does not trigger first
	_, err := r.Join(testPlayer(t, "Alice"))
	require.NoError(t, err)
	_, err = r.Join(testPlayer(t, "Bob"))
	require.NoError(t, err)
	r.StartMatch(5)

	_, err = r.Join(testPlayer(t, "Carol"))
	assert.Equal(t, apperrors.ErrGameStarted, err)
}

func TestRoom_GuessRound(t *testing.T) {
	t.Parallel()

	r, alice, bob := newTestRoom(t, 7)
	require.Equal(t, 1, r.CurrentRound)

	// Alice guesses low: mystery is higher, round does not advance yet
	outcome, state := r.RecordGuess(alice, 5)
	assert.Equal(t, game.OutcomeHigher, outcome)
	assert.Equal(t, 1, state.Attempts)
	assert.True(t, alice.HasGuessed)
	assert.False(t, r.AllGuessed())
	assert.Equal(t, 1, r.CurrentRound)

	// Bob guesses high: both have now guessed
	outcome, _ = r.RecordGuess(bob, 9)
	assert.Equal(t, game.OutcomeLower, outcome)
	assert.True(t, r.AllGuessed())

	// Round advances and guess flags reset
	r.AdvanceRound()
	assert.Equal(t, 2, r.CurrentRound)
	assert.False(t, alice.HasGuessed)
	assert.False(t, bob.HasGuessed)

	// Attempts persist across rounds within the same match
	assert.Equal(t, 1, r.Match.PlayerState("Alice").Attempts)
}

func TestRoom_GuessWin(t *testing.T) {
	t.Parallel()

	r, alice, bob := newTestRoom(t, 7)

	outcome, state := r.RecordGuess(alice, 7)
	assert.Equal(t, game.OutcomeWin, outcome)
	assert.True(t, state.IsWinner)
	assert.True(t, r.Completed)
	assert.True(t, r.Match.Completed)

	// The match ends even though Bob never guessed this round
	assert.False(t, bob.HasGuessed)
}

func TestRoom_StartNextGame(t *testing.T) {
	t.Parallel()

	r, alice, bob := newTestRoom(t, 7)

	r.RecordGuess(alice, 7)
	alice.Wins++
	r.GamesPlayed++
	require.True(t, r.CanPlayAgain())

	alice.ReadyForNextGame = true
	bob.ReadyForNextGame = true

	r.StartNextGame(4)

	assert.False(t, r.Completed)
	assert.Equal(t, 1, r.CurrentRound)
	assert.Equal(t, 4, r.Match.MysteryNumber)
	assert.False(t, alice.HasGuessed)
	assert.False(t, alice.ReadyForNextGame)
	assert.False(t, bob.ReadyForNextGame)
	// Series score carries over
	assert.Equal(t, 1, alice.Wins)
	assert.Zero(t, r.Match.PlayerState("Alice").Attempts)
}

func TestRoom_CanPlayAgain(t *testing.T) {
	t.Parallel()

	r := NewRoom("test", testRange(t), 3)
	assert.True(t, r.CanPlayAgain())

	r.GamesPlayed = 2
	assert.True(t, r.CanPlayAgain())

	r.GamesPlayed = 3
	assert.False(t, r.CanPlayAgain())
}

func TestRoom_Leave(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRoom(t, 7)

	removed := r.Leave("conn-a")
	require.NotNil(t, removed)
	assert.Equal(t, "Alice", removed.Player.Name)
	assert.Len(t, r.Members, 1)

	// Unknown connection is a no-op
	assert.Nil(t, r.Leave("conn-x"))
	assert.Len(t, r.Members, 1)
}

func TestRoom_MemberByConn(t *testing.T) {
	t.Parallel()

	r, alice, _ := newTestRoom(t, 7)

	assert.Equal(t, alice, r.MemberByConn("conn-a"))
	assert.Nil(t, r.MemberByConn("conn-x"))
	assert.Nil(t, r.MemberByConn(""))
}

func TestRoom_Snapshot(t *testing.T) {
	t.Parallel()

	r, alice, _ := newTestRoom(t, 7)
	r.RecordGuess(alice, 3)

	snap := r.Snapshot()
	assert.Equal(t, r.ID, snap.ID)
	assert.Equal(t, 1, snap.MinNumber)
	assert.Equal(t, 10, snap.MaxNumber)
	require.Len(t, snap.Members, 2)
	assert.True(t, snap.Members[0].HasGuessed)
	require.NotNil(t, snap.Match)
	assert.Equal(t, 7, snap.Match.MysteryNumber)
	require.Len(t, snap.Match.Players, 2)
	assert.Equal(t, 1, snap.Match.Players[0].Attempts)
}
