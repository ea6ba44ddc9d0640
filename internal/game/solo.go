package game

import "github.com/palemoky/hi-lo/internal/apperrors"

// GuessResult 一次猜测的完整结果
type GuessResult struct {
	Outcome  Outcome
	Message  string
	Attempts int
	Won      bool
}

// Solo 单人模式：一名玩家对一个神秘数字，无并发
type Solo struct {
	Match *Match
}

// NewSolo 创建单人游戏
func NewSolo(player Player, r Range, mysteryNumber int) *Solo {
	m := NewMatch(r, mysteryNumber)
	m.AddPlayer(player)
	return &Solo{Match: m}
}

// Guess 处理一次猜测
func (s *Solo) Guess(value int) (*GuessResult, error) {
	if s.Match.Completed {
		return nil, apperrors.ErrGameCompleted
	}
	if !s.Match.Range.Contains(value) {
		return nil, apperrors.GuessOutOfRange(s.Match.Range.Min, s.Match.Range.Max)
	}

	mp := s.Match.Players[0]
	outcome := s.Match.Evaluate(value)
	mp.Record(value, outcome)

	if outcome == OutcomeWin {
		mp.IsWinner = true
		s.Match.Complete()
	}

	return &GuessResult{
		Outcome:  outcome,
		Message:  FeedbackMessage(outcome, s.Match.MysteryNumber),
		Attempts: mp.Attempts,
		Won:      outcome == OutcomeWin,
	}, nil
}
