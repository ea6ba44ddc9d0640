package game

// Outcome 单次猜测的结果
type Outcome string

const (
	OutcomeHigher Outcome = "higher" // 神秘数字比猜测值更大
	OutcomeLower  Outcome = "lower"  // 神秘数字比猜测值更小
	OutcomeWin    Outcome = "win"    // 猜中
)

// GuessRecord 一次猜测的完整记录，按 Attempt 递增追加
type GuessRecord struct {
	Attempt int     `json:"attempt"` // 第几次猜测，从 1 开始
	Value   int     `json:"value"`   // 猜测值
	Outcome Outcome `json:"outcome"` // 结果
}
