package handlers

import (
	"context"
	"time"

	"github.com/palemoky/hi-lo/internal/apperrors"
	"github.com/palemoky/hi-lo/internal/game/room"
	"github.com/palemoky/hi-lo/internal/network/protocol"
	"github.com/palemoky/hi-lo/internal/network/server/storage"
	"github.com/palemoky/hi-lo/internal/network/server/types"
)

// handleMakeGuess 处理一次猜测
func (h *Handler) handleMakeGuess(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.MakeGuessPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	roomID := client.GetRoom()
	if roomID == "" {
		h.sendError(client, apperrors.ErrRoomNotFound)
		return
	}

	result, events, gameErr := h.server.Orchestrator().ProcessGuess(roomID, client.GetID(), payload.Value)
	if gameErr != nil {
		h.sendError(client, gameErr)
		return
	}

	r := h.server.Orchestrator().Store().Get(roomID)
	if r == nil {
		return
	}

	// 发起者先收到自己的结果回执，再收到广播事件
	client.SendMessage(protocol.MustNewMessage(protocol.MsgGuessResult, protocol.GuessResultPayload{
		Result:   string(result.Outcome),
		Message:  result.Message,
		Attempts: result.Attempts,
		Won:      result.Won,
	}))
	h.server.DeliverEvents(client, r, events)

	if result.Won {
		h.recordMatchResult(r)
	}
	h.persistRoom(r)
}

// handleNextGame 处理"下一局"确认
func (h *Handler) handleNextGame(client types.ClientInterface) {
	roomID := client.GetRoom()
	if roomID == "" {
		h.sendError(client, apperrors.ErrRoomNotFound)
		return
	}

	_, events, gameErr := h.server.Orchestrator().StartNextGame(roomID, client.GetID())
	if gameErr != nil {
		h.sendError(client, gameErr)
		return
	}

	r := h.server.Orchestrator().Store().Get(roomID)
	if r == nil {
		return
	}

	h.server.DeliverEvents(client, r, events)
	h.persistRoom(r)
}

// recordMatchResult 异步写入赛后战绩和历史记录
func (h *Handler) recordMatchResult(r *room.Room) {
	snap := r.Snapshot()
	if snap.Match == nil || !snap.Match.Completed {
		return
	}

	go func() {
		ctx := context.Background()
		history := storage.MatchHistory{
			RoomName:      snap.Name,
			MysteryNumber: snap.Match.MysteryNumber,
			MinNumber:     snap.MinNumber,
			MaxNumber:     snap.MaxNumber,
			CompletedAt:   time.Now().Unix(),
			Players:       snap.Match.Players,
		}
		for _, p := range snap.Match.Players {
			if p.IsWinner {
				history.WinnerName = p.Name
			}
			_ = h.server.Stats().RecordMatchResult(ctx, p.Name, p.IsWinner, p.Attempts)
		}
		_ = h.server.Stats().AddHistory(ctx, history)
	}()
}
