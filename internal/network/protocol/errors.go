package protocol

// 错误码定义
const (
	ErrCodeUnknown           = 1000 // 未知错误
	ErrCodeInvalidMsg        = 1001 // 无效消息格式
	ErrCodeInvalidRange      = 2001 // 数字范围无效
	ErrCodeRangeTooSmall     = 2002 // 数字范围太小
	ErrCodeInvalidPlayerName = 2003 // 玩家名无效
	ErrCodeInvalidTotalGames = 2004 // 总局数无效
	ErrCodeRoomNotFound      = 3001 // 房间不存在
	ErrCodeRoomFull          = 3002 // 房间已满
	ErrCodeGameStarted       = 3003 // 游戏已开始
	ErrCodeDuplicateName     = 3004 // 房间内玩家重名
	ErrCodeCannotStart       = 3005 // 尚不满足开始条件
	ErrCodeGameNotFound      = 4001 // 没有进行中的比赛
	ErrCodeNoActivePlayer    = 4002 // 连接未对应任何玩家
	ErrCodeAlreadyGuessed    = 4003 // 本回合已经猜过
	ErrCodeGuessOutOfRange   = 4004 // 猜测超出范围
	ErrCodeGameCompleted     = 4005 // 比赛已结束
	ErrCodeGameNotCompleted  = 4006 // 比赛尚未结束
	ErrCodeSeriesFinished    = 4007 // 系列赛已打满
)

// ErrorMessages 错误码对应的默认提示文本
var ErrorMessages = map[int]string{
	ErrCodeUnknown:           "An unknown error occurred",
	ErrCodeInvalidMsg:        "Invalid message format",
	ErrCodeInvalidRange:      "Min must be less than Max",
	ErrCodeRangeTooSmall:     "Range must be at least 3 numbers",
	ErrCodeInvalidPlayerName: "Player name cannot be empty",
	ErrCodeInvalidTotalGames: "Total games must be an odd number of at least 1",
	ErrCodeRoomNotFound:      "Room not found",
	ErrCodeRoomFull:          "Room is full",
	ErrCodeGameStarted:       "Game already started",
	ErrCodeDuplicateName:     "A player with this name is already in the room",
	ErrCodeCannotStart:       "Cannot start game",
	ErrCodeGameNotFound:      "Game not found",
	ErrCodeNoActivePlayer:    "No active player in the game",
	ErrCodeAlreadyGuessed:    "You already guessed this round. Wait for the other player.",
	ErrCodeGuessOutOfRange:   "Guess is out of the valid range",
	ErrCodeGameCompleted:     "Game is already completed",
	ErrCodeGameNotCompleted:  "Game must be completed first",
	ErrCodeSeriesFinished:    "All games in this series have been played",
}

// ErrorPayload 错误消息负载
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
