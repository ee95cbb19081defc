// Package redisstate 提供基于 Redis 的实时状态设施：房间消息主题的发布端。
package redisstate

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// ChannelForRoom 返回房间消息主题的 Redis 频道名。
// 发布端和 Hub 的订阅端必须使用同一命名，前缀用于多环境隔离。
func ChannelForRoom(prefix string, roomID uint) string {
	return fmt.Sprintf("%schat_room_%d", prefix, roomID)
}

// RedisPublisher 是 service.Publisher 的 Redis Pub/Sub 实现。
// 同一频道内 Redis 保证按发布顺序投递，因此提交顺序即投递顺序。
type RedisPublisher struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisPublisher 创建 RedisPublisher 实例
func NewRedisPublisher(client *redis.Client, keyPrefix string) *RedisPublisher {
	if client == nil {
		panic("redis client cannot be nil for RedisPublisher")
	}
	return &RedisPublisher{client: client, keyPrefix: keyPrefix}
}

// PublishMessage 将消息事件发布到房间频道
func (p *RedisPublisher) PublishMessage(ctx context.Context, roomID uint, payload []byte) error {
	channel := ChannelForRoom(p.keyPrefix, roomID)
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("redis: publish to %s: %w", channel, err)
	}
	return nil
}
