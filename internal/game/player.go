package game

import (
	"strings"

	"github.com/palemoky/hi-lo/internal/apperrors"
)

// Player 玩家身份，只有一个经过校验的显示名
type Player struct {
	Name string
}

// NewPlayer 创建玩家，名字去除首尾空白后不能为空
func NewPlayer(name string) (Player, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Player{}, apperrors.ErrInvalidPlayerName
	}
	return Player{Name: trimmed}, nil
}

// SameName 判断两个玩家名是否相同（忽略大小写）
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}
