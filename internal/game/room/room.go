package room

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/palemoky/hi-lo/internal/apperrors"
	"github.com/palemoky/hi-lo/internal/game"
)

// 每个房间固定两名玩家
const DefaultMaxPlayers = 2

// Member 房间中的玩家
//
// ConnID 是事件投递用的弱引用，连接断开后可能失效；
// 房间成员身份以 Player 为准，不以连接为准。
type Member struct {
	ConnID           string // 连接句柄，传输层接入前可能为空
	Player           game.Player
	HasGuessed       bool // 本回合是否已猜过
	ReadyForNextGame bool // 是否已确认进入下一局
	Wins             int  // 系列赛中的胜场，跨局保留
	JoinedAt         time.Time
}

// Room 游戏房间：成员、当前比赛、回合与系列赛计数的聚合根
//
// 所有修改必须在房间锁内串行执行，两个连接同时猜测时
// 由锁保证先后顺序。聚合方法只改状态、只返回事实，
// 广播哪些事件由 Orchestrator 决定。
type Room struct {
	ID           string
	Name         string
	Range        game.Range
	Members      []*Member // 按加入顺序，第一个是房主
	Match        *game.Match
	CreatedAt    time.Time
	Started      bool
	Completed    bool // 当前比赛是否已结束
	CurrentRound int  // 当前比赛内的猜测回合，从 1 开始
	MaxPlayers   int
	TotalGames   int // 系列赛总局数（奇数，≥1）
	GamesPlayed  int // 已完成的局数

	mu sync.RWMutex
}

// NewRoom 创建房间
func NewRoom(name string, r game.Range, totalGames int) *Room {
	return &Room{
		ID:           uuid.New().String(),
		Name:         name,
		Range:        r,
		CreatedAt:    time.Now(),
		CurrentRound: 1,
		MaxPlayers:   DefaultMaxPlayers,
		TotalGames:   totalGames,
	}
}

// Lock / Unlock / RLock / RUnlock 暴露房间锁，
// Orchestrator 用它把一次操作的检查和修改合成原子段
func (r *Room) Lock()    { r.mu.Lock() }
func (r *Room) Unlock()  { r.mu.Unlock() }
func (r *Room) RLock()   { r.mu.RLock() }
func (r *Room) RUnlock() { r.mu.RUnlock() }

// IsFull 房间是否已满
func (r *Room) IsFull() bool {
	return len(r.Members) >= r.MaxPlayers
}

// CanStart 人满且尚未开始时可以开赛
func (r *Room) CanStart() bool {
	return len(r.Members) == r.MaxPlayers && !r.Started
}

// CanPlayAgain 系列赛是否还有剩余局数
func (r *Room) CanPlayAgain() bool {
	return r.GamesPlayed < r.TotalGames
}

// MemberByConn 按连接句柄查找成员
func (r *Room) MemberByConn(connID string) *Member {
	if connID == "" {
		return nil
	}
	for _, m := range r.Members {
		if m.ConnID == connID {
			return m
		}
	}
	return nil
}

// Join 加入房间。房间满、已开赛或与现有成员重名（忽略大小写）时拒绝
func (r *Room) Join(p game.Player) (*Member, error) {
	if r.IsFull() {
		return nil, apperrors.ErrRoomFull
	}
	if r.Started {
		return nil, apperrors.ErrGameStarted
	}
	for _, m := range r.Members {
		if game.SameName(m.Player.Name, p.Name) {
			return nil, apperrors.DuplicatePlayerName(p.Name)
		}
	}

	member := &Member{
		Player:   p,
		JoinedAt: time.Now(),
	}
	r.Members = append(r.Members, member)
	return member, nil
}

// Leave 按连接句柄移除成员，返回被移除的成员用于通知；
// 未找到时返回 nil。房间空了之后由调用方负责删除房间
func (r *Room) Leave(connID string) *Member {
	for i, m := range r.Members {
		if m.ConnID == connID {
			r.Members = append(r.Members[:i], r.Members[i+1:]...)
			return m
		}
	}
	return nil
}

// StartMatch 开始比赛。前置条件（人满、未开始）由 Orchestrator 保证
func (r *Room) StartMatch(mysteryNumber int) {
	match := game.NewMatch(r.Range, mysteryNumber)
	for _, m := range r.Members {
		match.AddPlayer(m.Player)
	}
	r.Match = match
	r.Started = true
	r.Completed = false
	r.CurrentRound = 1
}

// RecordGuess 记录一次猜测并返回结果
//
// 只执行效果（追加记录、递增次数、置 HasGuessed；猜中时
// 标记胜者并结束比赛），不做参数校验——范围、重复猜测等
// 前置条件由 Orchestrator 负责
func (r *Room) RecordGuess(member *Member, value int) (game.Outcome, *game.MatchPlayer) {
	state := r.Match.PlayerState(member.Player.Name)
	outcome := r.Match.Evaluate(value)
	state.Record(value, outcome)
	member.HasGuessed = true

	if outcome == game.OutcomeWin {
		state.IsWinner = true
		r.Match.Complete()
		r.Completed = true
	}
	return outcome, state
}

// AllGuessed 本回合是否所有成员都已猜过
func (r *Room) AllGuessed() bool {
	for _, m := range r.Members {
		if !m.HasGuessed {
			return false
		}
	}
	return true
}

// AdvanceRound 双方都猜错时进入下一回合：回合数加一，清空猜测标记
func (r *Room) AdvanceRound() {
	r.CurrentRound++
	for _, m := range r.Members {
		m.HasGuessed = false
	}
}

// StartNextGame 用新的神秘数字开始系列赛的下一局：
// 清空猜测与准备标记、重置比赛内数据；玩家身份和胜场保留
func (r *Room) StartNextGame(newMysteryNumber int) {
	r.Completed = false
	r.CurrentRound = 1
	for _, m := range r.Members {
		m.HasGuessed = false
		m.ReadyForNextGame = false
	}
	if r.Match != nil {
		r.Match.Rematch(newMysteryNumber)
	}
}

// PlayerNames 按加入顺序返回玩家名
func (r *Room) PlayerNames() []string {
	names := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		names = append(names, m.Player.Name)
	}
	return names
}
