package handlers

import (
	"context"
	"strings"

	"github.com/palemoky/hi-lo/internal/game/room"
	"github.com/palemoky/hi-lo/internal/network/protocol"
	"github.com/palemoky/hi-lo/internal/network/server/types"
)

// handleCreateRoom 处理创建房间
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if client.GetRoom() != "" {
		h.handleLeaveRoom(client)
	}

	r, events, gameErr := h.server.Orchestrator().CreateRoom(
		payload.RoomName, payload.PlayerName,
		payload.MinNumber, payload.MaxNumber,
		payload.TotalGames, client.GetID(),
	)
	if gameErr != nil {
		h.sendError(client, gameErr)
		return
	}

	playerName := strings.TrimSpace(payload.PlayerName)
	client.SetRoom(r.ID)
	client.SetName(playerName)
	h.ackRoomJoined(client, r, playerName)
	h.server.DeliverEvents(client, r, events)
	h.persistRoom(r)
}

// handleJoinRoom 处理加入房间。人满后自动开赛
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if client.GetRoom() != "" {
		h.handleLeaveRoom(client)
	}

	result, events, gameErr := h.server.Orchestrator().JoinRoom(payload.RoomID, payload.PlayerName, client.GetID())
	if gameErr != nil {
		h.sendError(client, gameErr)
		return
	}

	client.SetRoom(result.Room.ID)
	client.SetName(result.Member.Player.Name)
	h.ackRoomJoined(client, result.Room, result.Member.Player.Name)
	h.server.DeliverEvents(client, result.Room, events)

	// 人数已满，立即开赛
	if result.ReadyToStart {
		startEvents, startErr := h.server.Orchestrator().StartMatch(result.Room.ID)
		if startErr == nil {
			h.server.DeliverEvents(client, result.Room, startEvents)
		}
	}

	h.persistRoom(result.Room)
}

// handleLeaveRoom 处理离开房间
func (h *Handler) handleLeaveRoom(client types.ClientInterface) {
	result, events, _ := h.server.Orchestrator().LeaveRoom(client.GetID())
	client.SetRoom("")
	if result == nil {
		return
	}

	if result.RoomDeleted {
		go func(id string) {
			_ = h.server.RedisStore().DeleteRoom(context.Background(), id)
		}(result.Room.ID)
		return
	}

	h.server.DeliverEvents(client, result.Room, events)
	h.persistRoom(result.Room)
}

// handleGetRoomList 返回可加入的房间列表
func (h *Handler) handleGetRoomList(client types.ClientInterface) {
	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomList, protocol.RoomListPayload{
		Rooms: h.server.Orchestrator().AvailableRooms(),
	}))
}

// ackRoomJoined 给发起者回执：所在房间的概要和成员名单
func (h *Handler) ackRoomJoined(client types.ClientInterface, r *room.Room, you string) {
	r.RLock()
	payload := protocol.RoomJoinedPayload{
		Room:    r.Summary(),
		Players: r.PlayerNames(),
		You:     you,
	}
	r.RUnlock()

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, payload))
}

// persistRoom 异步镜像房间快照到 Redis
func (h *Handler) persistRoom(r *room.Room) {
	go func() {
		_ = h.server.RedisStore().SaveRoom(context.Background(), r)
	}()
}
