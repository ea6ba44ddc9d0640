package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom  MessageType = "create_room"   // 创建房间
	MsgJoinRoom    MessageType = "join_room"     // 加入房间
	MsgLeaveRoom   MessageType = "leave_room"    // 离开房间
	MsgGetRoomList MessageType = "get_room_list" // 获取房间列表

	// 游戏操作
	MsgMakeGuess MessageType = "make_guess" // 提交猜测
	MsgNextGame  MessageType = "next_game"  // 请求下一局
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 房间相关
	MsgRoomCreated  MessageType = "room_created"  // 有新房间可加入（大厅广播）
	MsgRoomJoined   MessageType = "room_joined"   // 加入/创建房间成功
	MsgPlayerJoined MessageType = "player_joined" // 其他玩家加入
	MsgPlayerLeft   MessageType = "player_left"   // 玩家离开
	MsgRoomList     MessageType = "room_list"     // 房间列表

	// 游戏流程
	MsgMatchStarted       MessageType = "match_started"              // 比赛开始
	MsgGuessResult        MessageType = "guess_result"               // 本次猜测的结果（仅发给猜测者）
	MsgPlayerGuessed      MessageType = "player_guessed"             // 有玩家完成猜测（不泄露数值）
	MsgWaitingForOpponent MessageType = "waiting_for_opponent"       // 等待对手猜测
	MsgRoundCompleted     MessageType = "round_completed"            // 本回合双方都猜错，进入下一回合
	MsgMatchCompleted     MessageType = "match_completed"            // 比赛结束，揭晓神秘数字
	MsgPlayersReady       MessageType = "players_ready_for_next_game" // 下一局准备状态

	// 错误
	MsgError MessageType = "error" // 错误消息
)
