package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/hi-lo/internal/config"
	"github.com/palemoky/hi-lo/internal/game/room"
	"github.com/palemoky/hi-lo/internal/network/protocol"
	"github.com/palemoky/hi-lo/internal/network/server/handlers"
	"github.com/palemoky/hi-lo/internal/network/server/storage"
	"github.com/palemoky/hi-lo/internal/network/server/types"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
}

// Server WebSocket 服务器
type Server struct {
	config       *config.Config
	redis        *redis.Client
	redisStore   *storage.RedisStore
	stats        *storage.StatsManager
	orchestrator *room.Orchestrator
	handler      *handlers.Handler

	clients   map[string]*Client
	clientsMu sync.RWMutex

	httpServer *http.Server
	done       chan struct{}
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) (*Server, error) {
	// 初始化 Redis 客户端
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 测试 Redis 连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	s := &Server{
		config:       cfg,
		redis:        rdb,
		redisStore:   storage.NewRedisStore(rdb),
		stats:        storage.NewStatsManager(rdb),
		orchestrator: room.NewOrchestrator(room.NewStore()),
		clients:      make(map[string]*Client),
		done:         make(chan struct{}),
	}

	// 初始化消息处理器
	s.handler = handlers.NewHandler(s)

	// 启动房间清理协程
	go s.cleanupLoop()

	return s, nil
}

// Start 启动服务器
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}

	log.Printf("🚀 服务器监听 %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown 优雅关闭
func (s *Server) Shutdown() {
	close(s.done)

	s.clientsMu.Lock()
	for _, c := range s.clients {
		c.Close()
	}
	s.clientsMu.Unlock()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}
	_ = s.redis.Close()
}

// handleWebSocket 处理 WebSocket 升级
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	client := NewClient(s, conn)
	s.registerClient(client)

	// 告知客户端连接 ID 和建议昵称
	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		ConnID:   client.ID,
		Nickname: client.Name,
	}))

	go client.WritePump()
	go client.ReadPump()

	log.Printf("🔌 客户端 %s (%s) 已连接，当前在线 %d", client.Name, client.ID, s.OnlineCount())
}

// registerClient 注册连接
func (s *Server) registerClient(c *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[c.ID] = c
}

// unregisterClient 注销连接
func (s *Server) unregisterClient(c *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, c.ID)
}

// handleLeave 把连接断开转换为离开房间
func (s *Server) handleLeave(c *Client) {
	result, events, _ := s.orchestrator.LeaveRoom(c.ID)
	if result == nil {
		return
	}
	c.SetRoom("")

	if result.RoomDeleted {
		go func() {
			_ = s.redisStore.DeleteRoom(context.Background(), result.Room.ID)
		}()
		return
	}

	s.DeliverEvents(c, result.Room, events)
	go func() {
		_ = s.redisStore.SaveRoom(context.Background(), result.Room)
	}()
}

// DeliverEvents 按事件的投递范围把消息发给对应的连接
func (s *Server) DeliverEvents(caller types.ClientInterface, r *room.Room, events []room.Event) {
	for _, ev := range events {
		msg := protocol.MustNewMessage(ev.Type, ev.Payload)

		switch ev.Audience {
		case room.AudienceCaller:
			if caller != nil {
				caller.SendMessage(msg)
			}

		case room.AudienceRoom, room.AudienceRoomOthers:
			if r == nil {
				continue
			}
			var connIDs []string
			r.RLock()
			for _, m := range r.Members {
				connIDs = append(connIDs, m.ConnID)
			}
			r.RUnlock()

			for _, id := range connIDs {
				if ev.Audience == room.AudienceRoomOthers && caller != nil && id == caller.GetID() {
					continue
				}
				if c := s.GetClientByConn(id); c != nil {
					c.SendMessage(msg)
				}
			}

		case room.AudienceLobby:
			exclude := ""
			if caller != nil {
				exclude = caller.GetID()
			}
			s.BroadcastExcept(exclude, msg)
		}
	}
}

// GetClientByConn 按连接 ID 查找客户端
func (s *Server) GetClientByConn(connID string) types.ClientInterface {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	if c, ok := s.clients[connID]; ok {
		return c
	}
	return nil
}

// BroadcastExcept 广播给除指定连接外的所有在线客户端
func (s *Server) BroadcastExcept(connID string, msg *protocol.Message) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	for id, c := range s.clients {
		if id != connID {
			c.SendMessage(msg)
		}
	}
}

// OnlineCount 在线连接数
func (s *Server) OnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// Orchestrator 房间编排器
func (s *Server) Orchestrator() *room.Orchestrator { return s.orchestrator }

// RedisStore 房间快照镜像
func (s *Server) RedisStore() *storage.RedisStore { return s.redisStore }

// Stats 玩家战绩管理器
func (s *Server) Stats() *storage.StatsManager { return s.stats }

// cleanupLoop 定期清理等待超时的房间
func (s *Server) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

// cleanup 清理从未开赛且超时的房间
func (s *Server) cleanup() {
	removed := s.orchestrator.Store().CleanupStale(s.config.Game.RoomTimeoutDuration())
	for _, r := range removed {
		msg := protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "Room closed due to inactivity")

		r.RLock()
		for _, m := range r.Members {
			if c := s.GetClientByConn(m.ConnID); c != nil {
				c.SendMessage(msg)
				c.SetRoom("")
			}
		}
		r.RUnlock()

		go func(id string) {
			_ = s.redisStore.DeleteRoom(context.Background(), id)
		}(r.ID)
		log.Printf("🏠 房间 %s 等待超时已清理", r.ID)
	}
}
