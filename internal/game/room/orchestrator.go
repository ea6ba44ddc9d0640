package room

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/palemoky/hi-lo/internal/apperrors"
	"github.com/palemoky/hi-lo/internal/game"
	"github.com/palemoky/hi-lo/internal/network/protocol"
)

// JoinResult 加入房间的结果
type JoinResult struct {
	Room         *Room
	Member       *Member
	ReadyToStart bool // 人数已满，可以开赛
}

// NextGameResult 请求下一局的结果
type NextGameResult struct {
	AllReady       bool
	ReadyPlayers   []string
	WaitingPlayers []string
}

// LeaveResult 离开房间的结果
type LeaveResult struct {
	Room        *Room
	Member      *Member
	RoomDeleted bool // 最后一名成员离开，房间已删除
}

// Orchestrator 房间编排器：无状态的操作集合，校验前置条件、
// 在房间锁内应用修改，返回结构化结果和待广播的事件列表。
// 所有失败路径都返回 *apperrors.GameError，不会 panic 出边界
type Orchestrator struct {
	store *Store

	// RandInt 返回 [min, max] 内均匀分布的整数，测试时可注入
	RandInt func(min, max int) int
}

// NewOrchestrator 创建编排器
func NewOrchestrator(store *Store) *Orchestrator {
	return &Orchestrator{
		store: store,
		RandInt: func(min, max int) int {
			return rand.IntN(max-min+1) + min
		},
	}
}

// Store 返回底层房间存储
func (o *Orchestrator) Store() *Store {
	return o.store
}

// CreateRoom 创建房间，创建者为首位成员
func (o *Orchestrator) CreateRoom(roomName, playerName string, min, max, totalGames int, connID string) (*Room, []Event, *apperrors.GameError) {
	if totalGames < 1 || totalGames%2 == 0 {
		return nil, nil, apperrors.ErrInvalidTotalGames
	}

	rng, err := game.NewRange(min, max)
	if err != nil {
		return nil, nil, asGameError(err)
	}
	founder, err := game.NewPlayer(playerName)
	if err != nil {
		return nil, nil, asGameError(err)
	}

	r := NewRoom(roomName, rng, totalGames)
	member, err := r.Join(founder)
	if err != nil {
		return nil, nil, asGameError(err)
	}
	member.ConnID = connID

	o.store.Put(r)
	log.Printf("🏠 房间 %s (%s) 已创建，玩家 %s，区间 %s，共 %d 局", r.ID, r.Name, founder.Name, rng, totalGames)

	events := []Event{{
		Type:     protocol.MsgRoomCreated,
		Audience: AudienceLobby,
		Payload:  protocol.RoomCreatedPayload{Room: r.Summary()},
	}}
	return r, events, nil
}

// JoinRoom 加入房间
func (o *Orchestrator) JoinRoom(roomID, playerName, connID string) (*JoinResult, []Event, *apperrors.GameError) {
	r := o.store.Get(roomID)
	if r == nil {
		return nil, nil, apperrors.ErrRoomNotFound
	}

	player, err := game.NewPlayer(playerName)
	if err != nil {
		return nil, nil, asGameError(err)
	}

	r.Lock()
	defer r.Unlock()

	member, err := r.Join(player)
	if err != nil {
		return nil, nil, asGameError(err)
	}
	member.ConnID = connID

	log.Printf("👤 玩家 %s 加入房间 %s (%d/%d)", player.Name, r.ID, len(r.Members), r.MaxPlayers)

	events := []Event{{
		Type:     protocol.MsgPlayerJoined,
		Audience: AudienceRoomOthers,
		Payload: protocol.PlayerJoinedPayload{
			PlayerName:  player.Name,
			PlayerCount: len(r.Members),
			MaxPlayers:  r.MaxPlayers,
		},
	}}

	return &JoinResult{
		Room:         r,
		Member:       member,
		ReadyToStart: r.CanStart(),
	}, events, nil
}

// StartMatch 开始比赛：抽取神秘数字并进入第一回合
func (o *Orchestrator) StartMatch(roomID string) ([]Event, *apperrors.GameError) {
	r := o.store.Get(roomID)
	if r == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	r.Lock()
	defer r.Unlock()

	if !r.CanStart() {
		return nil, apperrors.ErrCannotStart
	}

	mystery := o.RandInt(r.Range.Min, r.Range.Max)
	r.StartMatch(mystery)

	log.Printf("🎮 房间 %s 第 %d/%d 局开始，区间 %s", r.ID, r.GamesPlayed+1, r.TotalGames, r.Range)

	return []Event{matchStartedEvent(r)}, nil
}

// ProcessGuess 处理一次猜测
//
// 成功时除返回结果外，还会按局面自动派生事件：
// 猜中 → 比赛结束并揭晓；双方都猜错 → 进入下一回合；
// 仅一方猜过 → 通知发起者等待对手
func (o *Orchestrator) ProcessGuess(roomID, connID string, value int) (*game.GuessResult, []Event, *apperrors.GameError) {
	r := o.store.Get(roomID)
	if r == nil {
		return nil, nil, apperrors.ErrRoomNotFound
	}

	r.Lock()
	defer r.Unlock()

	if !r.Started || r.Match == nil {
		return nil, nil, apperrors.ErrGameNotFound
	}
	if r.Completed {
		return nil, nil, apperrors.ErrGameCompleted
	}

	member := r.MemberByConn(connID)
	if member == nil {
		return nil, nil, apperrors.ErrNoActivePlayer
	}
	if member.HasGuessed {
		return nil, nil, apperrors.ErrAlreadyGuessed
	}
	if !r.Range.Contains(value) {
		return nil, nil, apperrors.GuessOutOfRange(r.Range.Min, r.Range.Max)
	}

	outcome, state := r.RecordGuess(member, value)
	won := outcome == game.OutcomeWin

	// 猜测动作对房间可见，但不泄露数值和方向
	events := []Event{{
		Type:     protocol.MsgPlayerGuessed,
		Audience: AudienceRoom,
		Payload:  protocol.PlayerGuessedPayload{PlayerName: member.Player.Name},
	}}

	switch {
	case won:
		// 本局结束：计入胜场和已完成局数，向全房间揭晓
		member.Wins++
		r.GamesPlayed++
		log.Printf("🏆 玩家 %s 在房间 %s 第 %d 回合猜中，系列赛 %d/%d",
			member.Player.Name, r.ID, r.CurrentRound, r.GamesPlayed, r.TotalGames)
		events = append(events, Event{
			Type:     protocol.MsgMatchCompleted,
			Audience: AudienceRoom,
			Payload: protocol.MatchCompletedPayload{
				WinnerName:    member.Player.Name,
				MysteryNumber: r.Match.MysteryNumber,
				RoundNumber:   r.CurrentRound,
				Players:       r.revealPlayers(),
				Scores:        r.scores(),
				GamesPlayed:   r.GamesPlayed,
				TotalGames:    r.TotalGames,
				SeriesOver:    !r.CanPlayAgain(),
			},
		})

	case r.AllGuessed():
		// 双方都猜错，进入下一回合
		r.AdvanceRound()
		events = append(events, Event{
			Type:     protocol.MsgRoundCompleted,
			Audience: AudienceRoom,
			Payload: protocol.RoundCompletedPayload{
				RoundNumber: r.CurrentRound,
				Message:     "Both players guessed. New round!",
				Scores:      r.scores(),
			},
		})

	default:
		// 对手还没猜，发起者立即收到等待提示，不阻塞
		events = append(events, Event{
			Type:     protocol.MsgWaitingForOpponent,
			Audience: AudienceCaller,
			Payload: protocol.WaitingForOpponentPayload{
				Message: fmt.Sprintf("Waiting for %s...", o.pendingOpponent(r, member)),
			},
		})
	}

	return &game.GuessResult{
		Outcome:  outcome,
		Message:  game.FeedbackMessage(outcome, r.Match.MysteryNumber),
		Attempts: state.Attempts,
		Won:      won,
	}, events, nil
}

// StartNextGame 两阶段确认进入下一局：标记发起者已准备，
// 所有成员都准备好后才抽取新数字开始；否则返回等待中的名单
func (o *Orchestrator) StartNextGame(roomID, connID string) (*NextGameResult, []Event, *apperrors.GameError) {
	r := o.store.Get(roomID)
	if r == nil {
		return nil, nil, apperrors.ErrRoomNotFound
	}

	r.Lock()
	defer r.Unlock()

	member := r.MemberByConn(connID)
	if member == nil {
		return nil, nil, apperrors.ErrNoActivePlayer
	}
	if !r.CanPlayAgain() {
		return nil, nil, apperrors.ErrSeriesFinished
	}
	if !r.Completed {
		return nil, nil, apperrors.ErrGameNotCompleted
	}

	member.ReadyForNextGame = true

	var ready, waiting []string
	for _, m := range r.Members {
		if m.ReadyForNextGame {
			ready = append(ready, m.Player.Name)
		} else {
			waiting = append(waiting, m.Player.Name)
		}
	}
	allReady := len(waiting) == 0

	events := []Event{{
		Type:     protocol.MsgPlayersReady,
		Audience: AudienceRoom,
		Payload: protocol.PlayersReadyPayload{
			ReadyPlayers:   ready,
			WaitingPlayers: waiting,
			AllReady:       allReady,
		},
	}}

	if allReady {
		mystery := o.RandInt(r.Range.Min, r.Range.Max)
		r.StartNextGame(mystery)
		log.Printf("🎮 房间 %s 第 %d/%d 局开始", r.ID, r.GamesPlayed+1, r.TotalGames)
		events = append(events, matchStartedEvent(r))
	}

	return &NextGameResult{
		AllReady:       allReady,
		ReadyPlayers:   ready,
		WaitingPlayers: waiting,
	}, events, nil
}

// LeaveRoom 按连接句柄离开所在房间。连接断开视为隐式离开，
// 不在任何房间时静默返回 nil 结果。进行中的比赛保持原状
func (o *Orchestrator) LeaveRoom(connID string) (*LeaveResult, []Event, *apperrors.GameError) {
	r := o.store.FindByConn(connID)
	if r == nil {
		return nil, nil, nil
	}

	r.Lock()
	member := r.Leave(connID)
	if member == nil {
		r.Unlock()
		return nil, nil, nil
	}
	empty := len(r.Members) == 0
	r.Unlock()

	result := &LeaveResult{Room: r, Member: member, RoomDeleted: empty}

	if empty {
		o.store.Delete(r.ID)
		log.Printf("🏠 房间 %s 已解散", r.ID)
		return result, nil, nil
	}

	log.Printf("👋 玩家 %s 离开房间 %s", member.Player.Name, r.ID)
	events := []Event{{
		Type:     protocol.MsgPlayerLeft,
		Audience: AudienceRoom, // 成员已移除，剩下的都是"其他人"
		Payload: protocol.PlayerLeftPayload{
			PlayerName: member.Player.Name,
			Message:    fmt.Sprintf("%s has left the game", member.Player.Name),
		},
	}}
	return result, events, nil
}

// AvailableRooms 可加入的房间概要列表，按创建时间倒序
func (o *Orchestrator) AvailableRooms() []protocol.RoomSummary {
	rooms := o.store.ListAvailable()
	summaries := make([]protocol.RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		r.RLock()
		summaries = append(summaries, r.Summary())
		r.RUnlock()
	}
	return summaries
}

// CanStartGame 纯判定，不修改任何状态
func (o *Orchestrator) CanStartGame(roomID string) bool {
	r := o.store.Get(roomID)
	if r == nil {
		return false
	}
	r.RLock()
	defer r.RUnlock()
	return r.CanStart()
}

// IsCompleted 纯判定，不修改任何状态
func (o *Orchestrator) IsCompleted(roomID string) bool {
	r := o.store.Get(roomID)
	if r == nil {
		return false
	}
	r.RLock()
	defer r.RUnlock()
	return r.Completed
}

// pendingOpponent 找到本回合还没猜的对手名。调用方需持有房间锁
func (o *Orchestrator) pendingOpponent(r *Room, self *Member) string {
	for _, m := range r.Members {
		if m != self && !m.HasGuessed {
			return m.Player.Name
		}
	}
	return "opponent"
}

// matchStartedEvent 构造比赛开始事件。调用方需持有房间锁
func matchStartedEvent(r *Room) Event {
	return Event{
		Type:     protocol.MsgMatchStarted,
		Audience: AudienceRoom,
		Payload: protocol.MatchStartedPayload{
			RoomName:   r.Name,
			MinNumber:  r.Range.Min,
			MaxNumber:  r.Range.Max,
			GameNumber: r.GamesPlayed + 1,
			TotalGames: r.TotalGames,
			Players:    r.PlayerNames(),
		},
	}
}

// asGameError 把构造函数返回的 error 还原为 *GameError
func asGameError(err error) *apperrors.GameError {
	if ge, ok := err.(*apperrors.GameError); ok {
		return ge
	}
	return apperrors.ErrUnknown
}
