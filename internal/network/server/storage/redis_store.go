package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/hi-lo/internal/game/room"
)

const (
	// Redis key 前缀
	roomKeyPrefix = "room:"

	// 房间数据过期时间
	roomExpiration = 2 * time.Hour
)

// RedisStore 房间快照的 Redis 镜像。
// 内存中的 room.Store 是权威存储，这里只做异步写入，
// 不提供持久性保证（last write wins）
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveRoom 保存房间快照
func (rs *RedisStore) SaveRoom(ctx context.Context, r *room.Room) error {
	snap := r.Snapshot()

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("序列化房间数据失败: %w", err)
	}

	key := roomKeyPrefix + snap.ID
	return rs.client.Set(ctx, key, data, roomExpiration).Err()
}

// LoadRoom 加载房间快照，不存在时返回 nil
func (rs *RedisStore) LoadRoom(ctx context.Context, id string) (*room.Snapshot, error) {
	key := roomKeyPrefix + id
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 房间不存在
		}
		return nil, err
	}

	var snap room.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("反序列化房间数据失败: %w", err)
	}
	return &snap, nil
}

// DeleteRoom 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, id string) error {
	key := roomKeyPrefix + id
	return rs.client.Del(ctx, key).Err()
}

// GetAllRoomIDs 列出所有已镜像的房间 ID
func (rs *RedisStore) GetAllRoomIDs(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, roomKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(keys))
	for i, key := range keys {
		ids[i] = key[len(roomKeyPrefix):]
	}
	return ids, nil
}
