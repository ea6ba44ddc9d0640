package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	RoomName   string `json:"room_name"`
	PlayerName string `json:"player_name"`
	MinNumber  int    `json:"min_number"`
	MaxNumber  int    `json:"max_number"`
	TotalGames int    `json:"total_games"` // 系列赛总局数（奇数）
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomID     string `json:"room_id"`
	PlayerName string `json:"player_name"`
}

// MakeGuessPayload 提交猜测请求
type MakeGuessPayload struct {
	Value int `json:"value"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	ConnID   string `json:"conn_id"`
	Nickname string `json:"nickname"` // 服务器建议的昵称，客户端可覆盖
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"`
}

// RoomSummary 房间概要（大厅展示用）
type RoomSummary struct {
	RoomID      string `json:"room_id"`
	RoomName    string `json:"room_name"`
	PlayerCount int    `json:"player_count"`
	MaxPlayers  int    `json:"max_players"`
	MinNumber   int    `json:"min_number"`
	MaxNumber   int    `json:"max_number"`
	TotalGames  int    `json:"total_games"`
	CreatedAt   int64  `json:"created_at"`
}

// RoomCreatedPayload 新房间可加入（广播给大厅）
type RoomCreatedPayload struct {
	Room RoomSummary `json:"room"`
}

// RoomJoinedPayload 加入/创建房间成功
type RoomJoinedPayload struct {
	Room    RoomSummary `json:"room"`
	Players []string    `json:"players"` // 按加入顺序
	You     string      `json:"you"`     // 本客户端的玩家名
}

// PlayerJoinedPayload 其他玩家加入通知
type PlayerJoinedPayload struct {
	PlayerName  string `json:"player_name"`
	PlayerCount int    `json:"player_count"`
	MaxPlayers  int    `json:"max_players"`
}

// PlayerLeftPayload 玩家离开通知
type PlayerLeftPayload struct {
	PlayerName string `json:"player_name"`
	Message    string `json:"message"`
}

// RoomListPayload 房间列表
type RoomListPayload struct {
	Rooms []RoomSummary `json:"rooms"`
}

// MatchStartedPayload 比赛开始
type MatchStartedPayload struct {
	RoomName   string   `json:"room_name"`
	MinNumber  int      `json:"min_number"`
	MaxNumber  int      `json:"max_number"`
	GameNumber int      `json:"game_number"` // 系列赛中的第几局（从 1 开始）
	TotalGames int      `json:"total_games"`
	Players    []string `json:"players"`
}

// GuessResultPayload 猜测结果（仅发给猜测者）
type GuessResultPayload struct {
	Result   string `json:"result"` // higher / lower / win
	Message  string `json:"message"`
	Attempts int    `json:"attempts"`
	Won      bool   `json:"won"`
}

// PlayerGuessedPayload 有玩家完成猜测
type PlayerGuessedPayload struct {
	PlayerName string `json:"player_name"`
}

// WaitingForOpponentPayload 等待对手
type WaitingForOpponentPayload struct {
	Message string `json:"message"`
}

// PlayerScore 系列赛比分条目
type PlayerScore struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// RoundCompletedPayload 回合结束，双方都猜错
type RoundCompletedPayload struct {
	RoundNumber int           `json:"round_number"`
	Message     string        `json:"message"`
	Scores      []PlayerScore `json:"scores"`
}

// GuessAttemptInfo 单次猜测记录（赛后揭晓用）
type GuessAttemptInfo struct {
	AttemptNumber int    `json:"attempt_number"`
	Value         int    `json:"value"`
	Result        string `json:"result"`
}

// MatchPlayerInfo 赛后玩家战况
type MatchPlayerInfo struct {
	Name     string             `json:"name"`
	Attempts int                `json:"attempts"`
	IsWinner bool               `json:"is_winner"`
	Guesses  []GuessAttemptInfo `json:"guesses"`
}

// MatchCompletedPayload 比赛结束，揭晓一切
type MatchCompletedPayload struct {
	WinnerName    string            `json:"winner_name"`
	MysteryNumber int               `json:"mystery_number"`
	RoundNumber   int               `json:"round_number"`
	Players       []MatchPlayerInfo `json:"players"`
	Scores        []PlayerScore     `json:"scores"`
	GamesPlayed   int               `json:"games_played"`
	TotalGames    int               `json:"total_games"`
	SeriesOver    bool              `json:"series_over"`
}

// PlayersReadyPayload 下一局准备状态
type PlayersReadyPayload struct {
	ReadyPlayers   []string `json:"ready_players"`
	WaitingPlayers []string `json:"waiting_players"`
	AllReady       bool     `json:"all_ready"`
}
