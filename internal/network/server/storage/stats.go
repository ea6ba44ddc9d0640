package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/hi-lo/internal/game/room"
)

const (
	playerStatsKey = "player:stats:"
	historyKey     = "match:history"

	// 历史记录上限
	maxHistorySize = 50
)

// PlayerStats 玩家统计数据，按玩家名（小写）累计
type PlayerStats struct {
	PlayerName string `json:"player_name"`

	TotalMatches int `json:"total_matches"` // 总场次
	Wins         int `json:"wins"`          // 胜场
	Losses       int `json:"losses"`        // 败场

	BestAttempts int `json:"best_attempts"` // 猜中时的最少尝试次数，0 表示尚未获胜

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// MatchHistory 一条赛后历史记录
type MatchHistory struct {
	RoomName      string                     `json:"room_name"`
	WinnerName    string                     `json:"winner_name"`
	MysteryNumber int                        `json:"mystery_number"`
	MinNumber     int                        `json:"min_number"`
	MaxNumber     int                        `json:"max_number"`
	CompletedAt   int64                      `json:"completed_at"`
	Players       []room.MatchPlayerSnapshot `json:"players"`
}

// StatsManager 玩家战绩和历史记录管理器
type StatsManager struct {
	redis *redis.Client
}

// NewStatsManager 创建管理器
func NewStatsManager(client *redis.Client) *StatsManager {
	return &StatsManager{redis: client}
}

// GetPlayerStats 获取玩家统计，不存在时返回 nil
func (sm *StatsManager) GetPlayerStats(ctx context.Context, playerName string) (*PlayerStats, error) {
	key := playerStatsKey + strings.ToLower(playerName)
	data, err := sm.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SavePlayerStats 保存玩家统计
func (sm *StatsManager) SavePlayerStats(ctx context.Context, stats *PlayerStats) error {
	key := playerStatsKey + strings.ToLower(stats.PlayerName)
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return sm.redis.Set(ctx, key, data, 0).Err()
}

// RecordMatchResult 记录一局结果：胜负计数、最佳尝试数、时间戳
func (sm *StatsManager) RecordMatchResult(ctx context.Context, playerName string, won bool, attempts int) error {
	stats, err := sm.GetPlayerStats(ctx, playerName)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	if stats == nil {
		stats = &PlayerStats{
			PlayerName: playerName,
			CreatedAt:  now,
		}
	}

	stats.TotalMatches++
	if won {
		stats.Wins++
		if stats.BestAttempts == 0 || attempts < stats.BestAttempts {
			stats.BestAttempts = attempts
		}
	} else {
		stats.Losses++
	}
	stats.LastPlayedAt = now

	return sm.SavePlayerStats(ctx, stats)
}

// AddHistory 追加一条历史记录，只保留最近 maxHistorySize 条
func (sm *StatsManager) AddHistory(ctx context.Context, h MatchHistory) error {
	data, err := json.Marshal(h)
	if err != nil {
		return err
	}

	pipe := sm.redis.Pipeline()
	pipe.LPush(ctx, historyKey, data)
	pipe.LTrim(ctx, historyKey, 0, maxHistorySize-1)
	_, err = pipe.Exec(ctx)
	return err
}

// GetHistory 按新到旧返回最近的历史记录
func (sm *StatsManager) GetHistory(ctx context.Context, limit int) ([]MatchHistory, error) {
	if limit <= 0 || limit > maxHistorySize {
		limit = maxHistorySize
	}

	items, err := sm.redis.LRange(ctx, historyKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	histories := make([]MatchHistory, 0, len(items))
	for _, item := range items {
		var h MatchHistory
		if err := json.Unmarshal([]byte(item), &h); err != nil {
			continue // 跳过坏数据
		}
		histories = append(histories, h)
	}
	return histories, nil
}
