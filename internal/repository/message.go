package repository

import (
	"context"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
)

// MessageRepository 定义了消息记录的存储和查询。
// 消息是只增的：没有更新和单条删除操作，删除只通过房间级联发生。
type MessageRepository interface {
	// Create 插入一条消息记录，ID 和 CreatedAt 由数据库填充。
	Create(ctx context.Context, message *domain.Message) error

	// ListByRoom 返回指定房间的全部消息，
	// 按 CreatedAt 升序排列，时间相同时按 ID 升序（即插入顺序）。
	ListByRoom(ctx context.Context, roomID uint) ([]domain.Message, error)
}
