package room

import (
	"sort"
	"sync"
	"time"
)

// Store 内存房间存储，按房间 ID 索引，支持多协程并发读写。
// 这是权威存储；Redis 镜像由服务端异步写入
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewStore 创建存储
func NewStore() *Store {
	return &Store{rooms: make(map[string]*Room)}
}

// Get 按 ID 获取房间，不存在时返回 nil
func (s *Store) Get(id string) *Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms[id]
}

// Put 保存房间
func (s *Store) Put(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID] = r
}

// Delete 删除房间
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

// Len 当前房间数量
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// ListAvailable 返回可加入的房间（未满且未开赛），按创建时间倒序。
// 大厅展示允许与并发加入之间的短暂不一致，这里只取读锁快照
func (s *Store) ListAvailable() []*Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rooms []*Room
	for _, r := range s.rooms {
		r.RLock()
		if !r.IsFull() && !r.Started {
			rooms = append(rooms, r)
		}
		r.RUnlock()
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].CreatedAt.After(rooms[j].CreatedAt)
	})
	return rooms
}

// FindByConn 按连接句柄查找所在房间
func (s *Store) FindByConn(connID string) *Room {
	if connID == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rooms {
		r.RLock()
		found := r.MemberByConn(connID) != nil
		r.RUnlock()
		if found {
			return r
		}
	}
	return nil
}

// CleanupStale 清理等待超时的房间：从未开赛且创建时间超过 maxAge。
// 返回被清理的房间，调用方负责通知其中的成员
func (s *Store) CleanupStale(maxAge time.Duration) []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var removed []*Room
	for id, r := range s.rooms {
		r.RLock()
		stale := !r.Started && now.Sub(r.CreatedAt) > maxAge
		r.RUnlock()
		if stale {
			delete(s.rooms, id)
			removed = append(removed, r)
		}
	}
	return removed
}
