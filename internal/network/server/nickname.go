package server

import (
	"math/rand/v2"
)

// 昵称词库，玩家没报名字前的占位昵称
var (
	adjectives = []string{
		"勇敢的", "聪明的", "快乐的", "神秘的", "酷炫的",
		"优雅的", "机智的", "沉稳的", "活泼的", "淡定的",
		"好运的", "敏锐的", "执着的", "冷静的", "果断的",
	}

	nouns = []string{
		"猜数人", "狐狸", "海豚", "企鹅", "考拉",
		"柴犬", "龙猫", "仓鼠", "松鼠", "水獭",
		"猫头鹰", "信天翁", "小章鱼", "羊驼", "刺猬",
	}
)

// GenerateNickname 生成随机昵称
func GenerateNickname() string {
	adj := adjectives[rand.IntN(len(adjectives))]
	noun := nouns[rand.IntN(len(nouns))]
	return adj + noun
}
