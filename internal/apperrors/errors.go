package apperrors

import (
	"fmt"

	"github.com/palemoky/hi-lo/internal/network/protocol"
)

// GameError 游戏错误（房间和比赛共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrUnknown           = &GameError{Code: protocol.ErrCodeUnknown, Message: protocol.ErrorMessages[protocol.ErrCodeUnknown]}
	ErrInvalidRange      = &GameError{Code: protocol.ErrCodeInvalidRange, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidRange]}
	ErrRangeTooSmall     = &GameError{Code: protocol.ErrCodeRangeTooSmall, Message: protocol.ErrorMessages[protocol.ErrCodeRangeTooSmall]}
	ErrInvalidPlayerName = &GameError{Code: protocol.ErrCodeInvalidPlayerName, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidPlayerName]}
	ErrInvalidTotalGames = &GameError{Code: protocol.ErrCodeInvalidTotalGames, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidTotalGames]}
	ErrRoomNotFound      = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: protocol.ErrorMessages[protocol.ErrCodeRoomNotFound]}
	ErrRoomFull          = &GameError{Code: protocol.ErrCodeRoomFull, Message: protocol.ErrorMessages[protocol.ErrCodeRoomFull]}
	ErrGameStarted       = &GameError{Code: protocol.ErrCodeGameStarted, Message: protocol.ErrorMessages[protocol.ErrCodeGameStarted]}
	ErrCannotStart       = &GameError{Code: protocol.ErrCodeCannotStart, Message: protocol.ErrorMessages[protocol.ErrCodeCannotStart]}
	ErrGameNotFound      = &GameError{Code: protocol.ErrCodeGameNotFound, Message: protocol.ErrorMessages[protocol.ErrCodeGameNotFound]}
	ErrNoActivePlayer    = &GameError{Code: protocol.ErrCodeNoActivePlayer, Message: protocol.ErrorMessages[protocol.ErrCodeNoActivePlayer]}
	ErrAlreadyGuessed    = &GameError{Code: protocol.ErrCodeAlreadyGuessed, Message: protocol.ErrorMessages[protocol.ErrCodeAlreadyGuessed]}
	ErrGameCompleted     = &GameError{Code: protocol.ErrCodeGameCompleted, Message: protocol.ErrorMessages[protocol.ErrCodeGameCompleted]}
	ErrGameNotCompleted  = &GameError{Code: protocol.ErrCodeGameNotCompleted, Message: protocol.ErrorMessages[protocol.ErrCodeGameNotCompleted]}
	ErrSeriesFinished    = &GameError{Code: protocol.ErrCodeSeriesFinished, Message: protocol.ErrorMessages[protocol.ErrCodeSeriesFinished]}
)

// DuplicatePlayerName 房间内重名错误，附带冲突的玩家名
func DuplicatePlayerName(name string) *GameError {
	return &GameError{
		Code:    protocol.ErrCodeDuplicateName,
		Message: fmt.Sprintf("A player named '%s' is already in this room", name),
	}
}

// GuessOutOfRange 超出范围错误，附带有效区间
func GuessOutOfRange(min, max int) *GameError {
	return &GameError{
		Code:    protocol.ErrCodeGuessOutOfRange,
		Message: fmt.Sprintf("%s. Valid range: [%d - %d]", protocol.ErrorMessages[protocol.ErrCodeGuessOutOfRange], min, max),
	}
}
