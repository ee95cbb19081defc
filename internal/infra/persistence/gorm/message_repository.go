package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
)

// GormMessageRepository 是 MessageRepository 接口的 GORM 实现
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository 创建 GormMessageRepository 实例
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	if db == nil {
		panic("database connection cannot be nil for GormMessageRepository")
	}
	return &GormMessageRepository{db: db}
}

// Create 实现消息插入，ID 和 CreatedAt 由数据库填充
func (r *GormMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	err := r.db.WithContext(ctx).Create(message).Error
	if err != nil {
		return fmt.Errorf("gorm: create message (room: %d, author: %d): %w",
			message.RoomID, message.AuthorID, err)
	}
	return nil
}

// ListByRoom 实现房间消息历史查询。
// 按 created_at 升序，时间相同时按 id 升序保证总序。
func (r *GormMessageRepository) ListByRoom(ctx context.Context, roomID uint) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list messages (room: %d): %w", roomID, err)
	}
	return messages, nil
}
