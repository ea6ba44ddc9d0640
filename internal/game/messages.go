package game

import "fmt"

// 反馈文案
const (
	msgHigher = "HI - The mystery number is higher!"
	msgLower  = "LO - The mystery number is lower!"
	msgWin    = "Congratulations! You found the mystery number: %d!"
)

// FeedbackMessage 根据猜测结果生成给玩家的反馈文案
func FeedbackMessage(outcome Outcome, mysteryNumber int) string {
	switch outcome {
	case OutcomeWin:
		return fmt.Sprintf(msgWin, mysteryNumber)
	case OutcomeHigher:
		return msgHigher
	case OutcomeLower:
		return msgLower
	default:
		return ""
	}
}

// Instructions 开局提示
func Instructions(r Range) string {
	return fmt.Sprintf("Guess a number between %d and %d", r.Min, r.Max)
}
