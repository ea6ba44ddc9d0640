package types

import (
	"github.com/palemoky/hi-lo/internal/game/room"
	"github.com/palemoky/hi-lo/internal/network/protocol"
	"github.com/palemoky/hi-lo/internal/network/server/storage"
)

// ServerContext 服务器上下文接口 - 避免循环依赖
type ServerContext interface {
	Orchestrator() *room.Orchestrator
	RedisStore() *storage.RedisStore
	Stats() *storage.StatsManager
	GetClientByConn(connID string) ClientInterface
	BroadcastExcept(connID string, msg *protocol.Message)
	DeliverEvents(caller ClientInterface, r *room.Room, events []room.Event)
	OnlineCount() int
}

// ClientInterface 客户端接口
type ClientInterface interface {
	GetID() string
	GetName() string
	SetName(name string)
	GetRoom() string
	SetRoom(roomID string)
	SendMessage(msg *protocol.Message)
	Close()
}
