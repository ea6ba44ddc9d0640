package handlers

import (
	"log"
	"time"

	"github.com/palemoky/hi-lo/internal/apperrors"
	"github.com/palemoky/hi-lo/internal/network/protocol"
	"github.com/palemoky/hi-lo/internal/network/server/types"
)

// Handler 消息处理器
type Handler struct {
	server types.ServerContext
}

// NewHandler 创建处理器
func NewHandler(s types.ServerContext) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	switch msg.Type {
	// 连接操作
	case protocol.MsgPing:
		h.handlePing(client, msg)

	// 房间操作
	case protocol.MsgCreateRoom:
		h.handleCreateRoom(client, msg)
	case protocol.MsgJoinRoom:
		h.handleJoinRoom(client, msg)
	case protocol.MsgLeaveRoom:
		h.handleLeaveRoom(client)
	case protocol.MsgGetRoomList:
		h.handleGetRoomList(client)

	// 游戏操作
	case protocol.MsgMakeGuess:
		h.handleMakeGuess(client, msg)
	case protocol.MsgNextGame:
		h.handleNextGame(client)

	default:
		log.Printf("⚠️  未知消息类型: '%s' (来自: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// handlePing 处理心跳
func (h *Handler) handlePing(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: payload.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}

// sendError 把 GameError 回给发起者；其他成员不会看到被拒绝的操作
func (h *Handler) sendError(client types.ClientInterface, gameErr *apperrors.GameError) {
	client.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
}
