package client

import (
	"time"

	"github.com/palemoky/hi-lo/internal/network/protocol"
)

// 便捷方法：把一次操作包装成一条协议消息发出

// CreateRoom 创建房间
func (c *Client) CreateRoom(roomName, playerName string, min, max, totalGames int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgCreateRoom, protocol.CreateRoomPayload{
		RoomName:   roomName,
		PlayerName: playerName,
		MinNumber:  min,
		MaxNumber:  max,
		TotalGames: totalGames,
	}))
}

// JoinRoom 加入房间
func (c *Client) JoinRoom(roomID, playerName string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		RoomID:     roomID,
		PlayerName: playerName,
	}))
}

// LeaveRoom 离开房间
func (c *Client) LeaveRoom() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgLeaveRoom, nil))
}

// GetRoomList 获取房间列表
func (c *Client) GetRoomList() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetRoomList, nil))
}

// MakeGuess 提交一次猜测
func (c *Client) MakeGuess(value int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgMakeGuess, protocol.MakeGuessPayload{
		Value: value,
	}))
}

// NextGame 确认进入下一局
func (c *Client) NextGame() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgNextGame, nil))
}

// Ping 发送心跳
func (c *Client) Ping() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{
		Timestamp: time.Now().UnixMilli(),
	}))
}
