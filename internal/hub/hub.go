// Package hub 实现实时广播中枢：把已提交的消息事件按提交顺序
// 分发给当前订阅对应房间的所有 WebSocket 客户端。
package hub

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	redisstate "github.com/ekkymulia/seoul-festivmeet/internal/infra/state/redis"
)

// 包级别的 WebSocket 常量，供 hub 和 client 使用
const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024

	// 每个订阅者的发送缓冲区大小。缓冲区满时事件对该订阅者丢弃，
	// 由重连后的历史拉取补齐，不会阻塞其他订阅者或生产者。
	sendBufferSize = 256
)

// HubMessage 定义了在 Hub 内部通道传递的事件类型
type HubMessage struct {
	Type   string // "register", "unregister"
	Client *Client
}

// Hub 维护活跃订阅集合并协调消息分发。
// 每个房间对应一个 Redis 频道；该房间出现第一个订阅者时开始订阅频道，
// 最后一个订阅者离开时停止订阅。频道内事件按发布顺序（即提交顺序）到达。
type Hub struct {
	messageChan chan HubMessage

	// 订阅集合，按 RoomID 组织: map[roomID]map[*Client]bool
	rooms   map[uint]map[*Client]bool
	roomsMu sync.RWMutex

	// 每个房间的 Redis 订阅句柄
	subs   map[uint]*redis.PubSub
	subsMu sync.Mutex

	redisClient *redis.Client
	keyPrefix   string
}

// NewHub 创建并返回一个新的 Hub 实例
func NewHub(redisClient *redis.Client, keyPrefix string) *Hub {
	if redisClient == nil {
		panic("redis client cannot be nil for Hub")
	}
	return &Hub{
		messageChan: make(chan HubMessage, 512),
		rooms:       make(map[uint]map[*Client]bool),
		subs:        make(map[uint]*redis.PubSub),
		redisClient: redisClient,
		keyPrefix:   keyPrefix,
	}
}

// Run 启动 Hub 的主事件处理循环。它应该在一个单独的 goroutine 中运行。
func (h *Hub) Run() {
	log := logrus.WithField("component", "hub")
	log.Info("Hub is running...")

	for msg := range h.messageChan {
		switch msg.Type {
		case "register":
			h.registerClient(msg.Client)
		case "unregister":
			h.unregisterClient(msg.Client)
		default:
			log.Warnf("Hub: received unknown message type: %s", msg.Type)
		}
	}
	log.Info("Hub is shutting down...")
}

// QueueMessage 将事件放入 Hub 的处理队列 (非阻塞)。
// 返回 true 如果成功入队，false 如果队列已满。
func (h *Hub) QueueMessage(msg HubMessage) bool {
	select {
	case h.messageChan <- msg:
		return true
	default:
		logrus.WithField("message_type", msg.Type).Warn("Hub message channel full, dropping message")
		return false
	}
}

// registerClient 将客户端加入其房间的订阅集合，
// 必要时为该房间启动 Redis 频道订阅。
func (h *Hub) registerClient(client *Client) {
	if client == nil {
		logrus.Error("Hub: attempted to register a nil client")
		return
	}
	roomID := client.RoomID()
	logCtx := logrus.WithFields(logrus.Fields{
		"room_id": roomID,
		"user_id": client.UserID(),
	})

	h.roomsMu.Lock()
	first := false
	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*Client]bool)
		first = true
	}
	h.rooms[roomID][client] = true
	h.roomsMu.Unlock()
	logCtx.Info("Client registered to Hub")

	if first {
		h.subscribeRoom(roomID)
	}
}

// unregisterClient 将客户端移出订阅集合并释放其发送通道。
// 对同一客户端重复调用是幂等的：第二次调用时集合里已没有该客户端。
func (h *Hub) unregisterClient(client *Client) {
	if client == nil {
		logrus.Error("Hub: attempted to unregister a nil client")
		return
	}
	roomID := client.RoomID()
	logCtx := logrus.WithFields(logrus.Fields{
		"room_id": roomID,
		"user_id": client.UserID(),
	})

	h.roomsMu.Lock()
	roomClients, roomExists := h.rooms[roomID]
	empty := false
	if roomExists {
		if _, ok := roomClients[client]; ok {
			delete(roomClients, client)
			client.closeSend() // 关闭发送通道，WritePump 随之退出
			logCtx.Info("Client unregistered from Hub")
		}
		if len(roomClients) == 0 {
			delete(h.rooms, roomID)
			empty = true
		}
	}
	h.roomsMu.Unlock()

	if empty {
		h.unsubscribeRoom(roomID)
		logCtx.Info("Room empty, subscription stopped")
	}
}

// subscribeRoom 订阅房间的 Redis 频道并启动分发 goroutine
func (h *Hub) subscribeRoom(roomID uint) {
	channel := redisstate.ChannelForRoom(h.keyPrefix, roomID)

	h.subsMu.Lock()
	if _, ok := h.subs[roomID]; ok {
		h.subsMu.Unlock()
		return
	}
	pubsub := h.redisClient.Subscribe(context.Background(), channel)
	h.subs[roomID] = pubsub
	h.subsMu.Unlock()

	logrus.WithFields(logrus.Fields{"room_id": roomID, "channel": channel}).Info("Subscribed to room channel")
	go h.pumpRoom(roomID, pubsub)
}

// unsubscribeRoom 关闭房间的 Redis 订阅；pumpRoom 随通道关闭退出。
// 重复调用是安全的。
func (h *Hub) unsubscribeRoom(roomID uint) {
	h.subsMu.Lock()
	pubsub, ok := h.subs[roomID]
	if ok {
		delete(h.subs, roomID)
	}
	h.subsMu.Unlock()

	if ok {
		if err := pubsub.Close(); err != nil {
			logrus.WithError(err).WithField("room_id", roomID).Warn("Failed to close room subscription")
		}
	}
}

// pumpRoom 持续从房间频道读取事件并分发给订阅者。
// Redis 保证同一频道按发布顺序投递，这里逐条处理以保持该顺序。
func (h *Hub) pumpRoom(roomID uint, pubsub *redis.PubSub) {
	logCtx := logrus.WithFields(logrus.Fields{"component": "hub", "room_id": roomID})
	for msg := range pubsub.Channel() {
		h.broadcast(roomID, []byte(msg.Payload))
	}
	logCtx.Debug("Room pump exited")
}

// broadcast 将事件发送给指定房间的所有订阅者。
// 对每个订阅者使用非阻塞发送：某个订阅者的缓冲区满只影响它自己，
// 缺口由其重连后的历史拉取补齐。
func (h *Hub) broadcast(roomID uint, payload []byte) {
	h.roomsMu.RLock()
	roomClients, ok := h.rooms[roomID]
	clientsToSend := make([]*Client, 0, len(roomClients))
	if ok {
		for client := range roomClients {
			clientsToSend = append(clientsToSend, client)
		}
	}
	h.roomsMu.RUnlock()

	if len(clientsToSend) == 0 {
		return
	}

	logCtx := logrus.WithFields(logrus.Fields{
		"room_id":         roomID,
		"payload_size":    len(payload),
		"recipient_count": len(clientsToSend),
	})
	logCtx.Debug("Broadcasting message to subscribers")

	for _, client := range clientsToSend {
		if !client.trySend(payload) {
			logCtx.WithField("receiver_user_id", client.UserID()).
				Warn("Client send buffer full during broadcast, dropping event for this client")
		}
	}
}

// StopAllSubscriptions 关闭所有房间的 Redis 订阅，用于优雅关闭。
func (h *Hub) StopAllSubscriptions() {
	h.subsMu.Lock()
	subs := h.subs
	h.subs = make(map[uint]*redis.PubSub)
	h.subsMu.Unlock()

	for roomID, pubsub := range subs {
		if err := pubsub.Close(); err != nil {
			logrus.WithError(err).WithField("room_id", roomID).Warn("Failed to close subscription during shutdown")
		}
	}
	logrus.WithField("component", "hub").Info("All room subscriptions stopped")
}
