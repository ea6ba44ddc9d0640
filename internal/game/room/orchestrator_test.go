package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hi-lo/internal/apperrors"
	"github.com/palemoky/hi-lo/internal/game"
	"github.com/palemoky/hi-lo/internal/network/protocol"
)

// newTestOrchestrator returns an orchestrator with a deterministic
// mystery number source.
func newTestOrchestrator(mystery int) *Orchestrator {
	o := NewOrchestrator(NewStore())
	o.RandInt = func(min, max int) int { return mystery }
	return o
}

// setupMatch creates a room with two players and an active match.
func setupMatch(t *testing.T, o *Orchestrator) *Room {
	t.Helper()

	r, _, gameErr := o.CreateRoom("test room", "Alice", 1, 10, 3, "conn-a")
	require.Nil(t, gameErr)

	result, _, gameErr := o.JoinRoom(r.ID, "Bob", "conn-b")
	require.Nil(t, gameErr)
	require.True(t, result.ReadyToStart)

	_, gameErr = o.StartMatch(r.ID)
	require.Nil(t, gameErr)
	return r
}

func eventTypes(events []Event) []protocol.MessageType {
	types := make([]protocol.MessageType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func TestOrchestrator_CreateRoom(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r, events, gameErr := o.CreateRoom("my room", "Alice", 1, 100, 3, "conn-a")
	require.Nil(t, gameErr)

	assert.Equal(t, "my room", r.Name)
	assert.Len(t, r.Members, 1)
	assert.Equal(t, "conn-a", r.Members[0].ConnID)
	assert.Equal(t, r, o.Store().Get(r.ID))

	// Lobby hears about the new room
	require.Len(t, events, 1)
	assert.Equal(t, protocol.MsgRoomCreated, events[0].Type)
	assert.Equal(t, AudienceLobby, events[0].Audience)
}

func TestOrchestrator_CreateRoom_Validation(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)

	tests := []struct {
		name       string
		playerName string
		min, max   int
		totalGames int
		wantErr    *apperrors.GameError
	}{
		{"even total games", "Alice", 1, 100, 2, apperrors.ErrInvalidTotalGames},
		{"zero total games", "Alice", 1, 100, 0, apperrors.ErrInvalidTotalGames},
		{"negative total games", "Alice", 1, 100, -3, apperrors.ErrInvalidTotalGames},
		{"inverted range", "Alice", 100, 1, 3, apperrors.ErrInvalidRange},
		{"tiny range", "Alice", 1, 2, 3, apperrors.ErrRangeTooSmall},
		{"blank player name", "   ", 1, 100, 3, apperrors.ErrInvalidPlayerName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, gameErr := o.CreateRoom("room", tt.playerName, tt.min, tt.max, tt.totalGames, "conn-a")
			assert.Equal(t, tt.wantErr, gameErr)
		})
	}
}

func TestOrchestrator_JoinRoom(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r, _, gameErr := o.CreateRoom("test", "Alice", 1, 10, 3, "conn-a")
	require.Nil(t, gameErr)

	result, events, gameErr := o.JoinRoom(r.ID, "Bob", "conn-b")
	require.Nil(t, gameErr)
	assert.True(t, result.ReadyToStart)
	assert.Equal(t, "Bob", result.Member.Player.Name)

	// Only the other occupants are notified, not the joiner
	require.Len(t, events, 1)
	assert.Equal(t, protocol.MsgPlayerJoined, events[0].Type)
	assert.Equal(t, AudienceRoomOthers, events[0].Audience)

	_, _, gameErr = o.JoinRoom("missing", "Carol", "conn-c")
	assert.Equal(t, apperrors.ErrRoomNotFound, gameErr)
}

func TestOrchestrator_StartMatch(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r, _, gameErr := o.CreateRoom("test", "Alice", 1, 10, 3, "conn-a")
	require.Nil(t, gameErr)

	// One player is not enough
	_, gameErr = o.StartMatch(r.ID)
	assert.Equal(t, apperrors.ErrCannotStart, gameErr)

	_, _, gameErr = o.JoinRoom(r.ID, "Bob", "conn-b")
	require.Nil(t, gameErr)

	events, gameErr := o.StartMatch(r.ID)
	require.Nil(t, gameErr)
	require.Len(t, events, 1)
	assert.Equal(t, protocol.MsgMatchStarted, events[0].Type)

	payload := events[0].Payload.(protocol.MatchStartedPayload)
	assert.Equal(t, 1, payload.GameNumber)
	assert.Equal(t, 3, payload.TotalGames)
	assert.Equal(t, []string{"Alice", "Bob"}, payload.Players)
	assert.Equal(t, 7, r.Match.MysteryNumber)

	// Starting twice is rejected
	_, gameErr = o.StartMatch(r.ID)
	assert.Equal(t, apperrors.ErrCannotStart, gameErr)
}

func TestOrchestrator_ProcessGuess_Walkthrough(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r := setupMatch(t, o)

	// Alice guesses low, Bob has not guessed yet: she waits
	result, events, gameErr := o.ProcessGuess(r.ID, "conn-a", 5)
	require.Nil(t, gameErr)
	assert.Equal(t, game.OutcomeHigher, result.Outcome)
	assert.Equal(t, 1, result.Attempts)
	assert.False(t, result.Won)
	assert.Equal(t,
		[]protocol.MessageType{protocol.MsgPlayerGuessed, protocol.MsgWaitingForOpponent},
		eventTypes(events))
	assert.Equal(t, AudienceCaller, events[1].Audience)

	// Bob guesses high: both wrong, round advances
	result, events, gameErr = o.ProcessGuess(r.ID, "conn-b", 9)
	require.Nil(t, gameErr)
	assert.Equal(t, game.OutcomeLower, result.Outcome)
	assert.Equal(t,
		[]protocol.MessageType{protocol.MsgPlayerGuessed, protocol.MsgRoundCompleted},
		eventTypes(events))
	assert.Equal(t, 2, r.CurrentRound)

	// Round 2: Alice wins
	result, events, gameErr = o.ProcessGuess(r.ID, "conn-a", 7)
	require.Nil(t, gameErr)
	assert.True(t, result.Won)
	assert.Equal(t,
		[]protocol.MessageType{protocol.MsgPlayerGuessed, protocol.MsgMatchCompleted},
		eventTypes(events))

	payload := events[1].Payload.(protocol.MatchCompletedPayload)
	assert.Equal(t, "Alice", payload.WinnerName)
	assert.Equal(t, 7, payload.MysteryNumber)
	assert.Equal(t, 2, payload.RoundNumber)
	assert.Equal(t, 1, payload.GamesPlayed)
	assert.False(t, payload.SeriesOver)

	assert.Equal(t, 1, r.GamesPlayed)
	assert.Equal(t, 1, r.MemberByConn("conn-a").Wins)
	assert.True(t, o.IsCompleted(r.ID))
}

func TestOrchestrator_ProcessGuess_Errors(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r := setupMatch(t, o)

	// Unknown room
	_, _, gameErr := o.ProcessGuess("missing", "conn-a", 5)
	assert.Equal(t, apperrors.ErrRoomNotFound, gameErr)

	// Connection not in the room
	_, _, gameErr = o.ProcessGuess(r.ID, "conn-x", 5)
	assert.Equal(t, apperrors.ErrNoActivePlayer, gameErr)

	// Out of range guess leaves no trace
	_, _, gameErr = o.ProcessGuess(r.ID, "conn-a", 99)
	require.NotNil(t, gameErr)
	assert.Equal(t, protocol.ErrCodeGuessOutOfRange, gameErr.Code)
	assert.False(t, r.MemberByConn("conn-a").HasGuessed)

	// Double guess in the same round
	_, _, gameErr = o.ProcessGuess(r.ID, "conn-a", 5)
	require.Nil(t, gameErr)
	_, _, gameErr = o.ProcessGuess(r.ID, "conn-a", 6)
	assert.Equal(t, apperrors.ErrAlreadyGuessed, gameErr)

	// Guessing after the match completed
	_, _, gameErr = o.ProcessGuess(r.ID, "conn-b", 7)
	require.Nil(t, gameErr)
	_, _, gameErr = o.ProcessGuess(r.ID, "conn-a", 6)
	assert.Equal(t, apperrors.ErrGameCompleted, gameErr)
}

func TestOrchestrator_ProcessGuess_BeforeStart(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r, _, gameErr := o.CreateRoom("test", "Alice", 1, 10, 3, "conn-a")
	require.Nil(t, gameErr)

	_, _, gameErr = o.ProcessGuess(r.ID, "conn-a", 5)
	assert.Equal(t, apperrors.ErrGameNotFound, gameErr)
}

func TestOrchestrator_StartNextGame(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r := setupMatch(t, o)

	// Next game before the current one finishes is rejected
	_, _, gameErr := o.StartNextGame(r.ID, "conn-a")
	assert.Equal(t, apperrors.ErrGameNotCompleted, gameErr)

	_, _, gameErr = o.ProcessGuess(r.ID, "conn-a", 7)
	require.Nil(t, gameErr)

	// First confirmation: waiting for Bob
	result, events, gameErr := o.StartNextGame(r.ID, "conn-a")
	require.Nil(t, gameErr)
	assert.False(t, result.AllReady)
	assert.Equal(t, []string{"Alice"}, result.ReadyPlayers)
	assert.Equal(t, []string{"Bob"}, result.WaitingPlayers)
	assert.Equal(t, []protocol.MessageType{protocol.MsgPlayersReady}, eventTypes(events))

	// Second confirmation: new game starts with a fresh mystery number
	o.RandInt = func(min, max int) int { return 4 }
	result, events, gameErr = o.StartNextGame(r.ID, "conn-b")
	require.Nil(t, gameErr)
	assert.True(t, result.AllReady)
	assert.Equal(t,
		[]protocol.MessageType{protocol.MsgPlayersReady, protocol.MsgMatchStarted},
		eventTypes(events))

	payload := events[1].Payload.(protocol.MatchStartedPayload)
	assert.Equal(t, 2, payload.GameNumber)
	assert.Equal(t, 4, r.Match.MysteryNumber)
	assert.Equal(t, 1, r.CurrentRound)
	assert.False(t, r.Completed)
}

func TestOrchestrator_SeriesFinished(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)

	// Best-of-1: the series ends after a single game
	r, _, gameErr := o.CreateRoom("test", "Alice", 1, 10, 1, "conn-a")
	require.Nil(t, gameErr)
	_, _, gameErr = o.JoinRoom(r.ID, "Bob", "conn-b")
	require.Nil(t, gameErr)
	_, gameErr = o.StartMatch(r.ID)
	require.Nil(t, gameErr)

	_, events, gameErr := o.ProcessGuess(r.ID, "conn-a", 7)
	require.Nil(t, gameErr)
	payload := events[1].Payload.(protocol.MatchCompletedPayload)
	assert.True(t, payload.SeriesOver)

	_, _, gameErr = o.StartNextGame(r.ID, "conn-a")
	assert.Equal(t, apperrors.ErrSeriesFinished, gameErr)
}

func TestOrchestrator_LeaveRoom(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r := setupMatch(t, o)

	// First player leaves: the room survives, the other is told
	result, events, gameErr := o.LeaveRoom("conn-a")
	require.Nil(t, gameErr)
	require.NotNil(t, result)
	assert.False(t, result.RoomDeleted)
	assert.Equal(t, "Alice", result.Member.Player.Name)
	require.Len(t, events, 1)
	assert.Equal(t, protocol.MsgPlayerLeft, events[0].Type)

	// Last player leaves: the room is deleted, nobody left to notify
	result, events, gameErr = o.LeaveRoom("conn-b")
	require.Nil(t, gameErr)
	require.NotNil(t, result)
	assert.True(t, result.RoomDeleted)
	assert.Empty(t, events)
	assert.Nil(t, o.Store().Get(r.ID))

	// Leaving while not in any room is silent
	result, events, gameErr = o.LeaveRoom("conn-x")
	assert.Nil(t, result)
	assert.Empty(t, events)
	assert.Nil(t, gameErr)
}

func TestOrchestrator_AvailableRooms(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r1, _, gameErr := o.CreateRoom("open", "Alice", 1, 10, 3, "conn-a")
	require.Nil(t, gameErr)

	// A full room disappears from the lobby list
	r2, _, gameErr := o.CreateRoom("full", "Carol", 1, 10, 3, "conn-c")
	require.Nil(t, gameErr)
	_, _, gameErr = o.JoinRoom(r2.ID, "Dave", "conn-d")
	require.Nil(t, gameErr)

	rooms := o.AvailableRooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, r1.ID, rooms[0].RoomID)
	assert.Equal(t, "open", rooms[0].RoomName)
}

func TestOrchestrator_PredicatesDoNotMutate(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(7)
	r := setupMatch(t, o)

	for i := 0; i < 3; i++ {
		assert.False(t, o.CanStartGame(r.ID))
		assert.False(t, o.IsCompleted(r.ID))
	}

	// The match is untouched by repeated predicate calls
	r.RLock()
	assert.True(t, r.Started)
	assert.Equal(t, 1, r.CurrentRound)
	assert.Equal(t, 0, r.GamesPlayed)
	r.RUnlock()

	// Unknown room: both predicates are simply false
	assert.False(t, o.CanStartGame("missing"))
	assert.False(t, o.IsCompleted("missing"))
}
