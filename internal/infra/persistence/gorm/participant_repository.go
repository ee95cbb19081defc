package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
	"github.com/ekkymulia/seoul-festivmeet/internal/repository"
)

// GormParticipantRepository 是 ParticipantRepository 接口的 GORM 实现
type GormParticipantRepository struct {
	db *gorm.DB
}

// NewGormParticipantRepository 创建 GormParticipantRepository 实例
func NewGormParticipantRepository(db *gorm.DB) *GormParticipantRepository {
	if db == nil {
		panic("database connection cannot be nil for GormParticipantRepository")
	}
	return &GormParticipantRepository{db: db}
}

// Create 实现参与记录插入。
// 并发加入同一房间时由 (room_id, user_id) 唯一索引裁决，
// 失败方映射为 ErrDuplicateEntry 而不是底层驱动错误。
func (r *GormParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	err := r.db.WithContext(ctx).Create(participant).Error
	if err != nil {
		if isDuplicateEntry(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create participant (room: %d, user: %d): %w",
			participant.RoomID, participant.UserID, err)
	}
	return nil
}

// Exists 实现参与记录存在性检查
func (r *GormParticipantRepository) Exists(ctx context.Context, roomID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Participant{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("gorm: check participant (room: %d, user: %d): %w", roomID, userID, err)
	}
	return count > 0, nil
}

// Delete 实现参与记录删除
func (r *GormParticipantRepository) Delete(ctx context.Context, roomID, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Delete(&domain.Participant{})
	if result.Error != nil {
		return fmt.Errorf("gorm: delete participant (room: %d, user: %d): %w", roomID, userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrParticipantNotFound
	}
	return nil
}

// CountByRoom 实现单个房间的参与者计数
func (r *GormParticipantRepository) CountByRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Participant{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count participants (room: %d): %w", roomID, err)
	}
	return count, nil
}

// CountByRooms 实现多个房间的批量参与者计数
func (r *GormParticipantRepository) CountByRooms(ctx context.Context, roomIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(roomIDs))
	if len(roomIDs) == 0 {
		return counts, nil // 避免空的 IN 查询
	}
	var rows []struct {
		RoomID uint
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Participant{}).
		Select("room_id, COUNT(*) as count").
		Where("room_id IN ?", roomIDs).
		Group("room_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: count participants by rooms: %w", err)
	}
	for _, row := range rows {
		counts[row.RoomID] = row.Count
	}
	return counts, nil
}
