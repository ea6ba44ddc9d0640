package game

import (
	"time"

	"github.com/google/uuid"
)

// MatchPlayer 一名玩家在一局比赛中的状态
type MatchPlayer struct {
	Player   Player
	Attempts int
	Guesses  []GuessRecord
	IsWinner bool
}

// Record 记录一次猜测并递增尝试次数
func (mp *MatchPlayer) Record(value int, outcome Outcome) GuessRecord {
	mp.Attempts++
	rec := GuessRecord{
		Attempt: mp.Attempts,
		Value:   value,
		Outcome: outcome,
	}
	mp.Guesses = append(mp.Guesses, rec)
	return rec
}

// reset 为下一局清空本局数据，保留玩家身份
func (mp *MatchPlayer) reset() {
	mp.Attempts = 0
	mp.Guesses = nil
	mp.IsWinner = false
}

// Match 一局比赛：一个固定的神秘数字，直到有人猜中
type Match struct {
	ID            string
	MysteryNumber int // 比赛结束前对外隐藏
	Range         Range
	StartedAt     time.Time
	CompletedAt   time.Time
	Completed     bool
	Players       []*MatchPlayer
}

// NewMatch 创建比赛
func NewMatch(r Range, mysteryNumber int) *Match {
	return &Match{
		ID:            uuid.New().String(),
		MysteryNumber: mysteryNumber,
		Range:         r,
		StartedAt:     time.Now(),
	}
}

// AddPlayer 把玩家加入比赛
func (m *Match) AddPlayer(p Player) {
	m.Players = append(m.Players, &MatchPlayer{Player: p})
}

// PlayerState 按玩家名查找比赛状态（忽略大小写）
func (m *Match) PlayerState(name string) *MatchPlayer {
	for _, mp := range m.Players {
		if SameName(mp.Player.Name, name) {
			return mp
		}
	}
	return nil
}

// Evaluate 判定一次猜测：猜中为 Win，偏小则神秘数字更高，偏大则更低
func (m *Match) Evaluate(value int) Outcome {
	if value == m.MysteryNumber {
		return OutcomeWin
	}
	if value < m.MysteryNumber {
		return OutcomeHigher
	}
	return OutcomeLower
}

// Winner 返回获胜者，最多一个；没有则返回 nil
func (m *Match) Winner() *MatchPlayer {
	for _, mp := range m.Players {
		if mp.IsWinner {
			return mp
		}
	}
	return nil
}

// Complete 标记比赛结束并记录结束时间
func (m *Match) Complete() {
	m.Completed = true
	m.CompletedAt = time.Now()
}

// Rematch 用新的神秘数字开始下一局：清空所有玩家的本局数据，
// 玩家身份保留
func (m *Match) Rematch(newMysteryNumber int) {
	m.MysteryNumber = newMysteryNumber
	m.Completed = false
	m.CompletedAt = time.Time{}
	m.StartedAt = time.Now()
	for _, mp := range m.Players {
		mp.reset()
	}
}
