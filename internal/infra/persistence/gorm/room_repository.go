package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
	"github.com/ekkymulia/seoul-festivmeet/internal/repository"
)

// GormRoomRepository 是 RoomRepository 接口的 GORM 实现
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository 创建 GormRoomRepository 实例
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	if db == nil {
		panic("database connection cannot be nil for GormRoomRepository")
	}
	return &GormRoomRepository{db: db}
}

// FindByID 实现根据房间 ID 查找房间
func (r *GormRoomRepository) FindByID(ctx context.Context, id uint) (*domain.Room, error) {
	var roomData domain.Room
	err := r.db.WithContext(ctx).First(&roomData, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}
		return nil, fmt.Errorf("gorm: find room by id %d: %w", id, err)
	}
	return &roomData, nil
}

// CreateWithCreator 实现房间和创建者参与记录的原子创建。
// 两条插入放在同一个事务中，任一失败整体回滚。
func (r *GormRoomRepository) CreateWithCreator(ctx context.Context, roomData *domain.Room) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(roomData).Error; err != nil {
			return err
		}
		participant := &domain.Participant{
			RoomID: roomData.ID,
			UserID: roomData.CreatorID,
		}
		return tx.Create(participant).Error
	})
	if err != nil {
		if isDuplicateEntry(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create room with creator (creator_id: %d): %w", roomData.CreatorID, err)
	}
	return nil
}

// Update 实现房间元数据更新
func (r *GormRoomRepository) Update(ctx context.Context, roomData *domain.Room) error {
	result := r.db.WithContext(ctx).Model(&domain.Room{ID: roomData.ID}).
		Updates(map[string]interface{}{
			"name":        roomData.Name,
			"description": roomData.Description,
		})
	if result.Error != nil {
		return fmt.Errorf("gorm: update room %d: %w", roomData.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}
	// 回读以获得数据库填充的 UpdatedAt
	return r.db.WithContext(ctx).First(roomData, roomData.ID).Error
}

// Delete 实现房间的级联删除。
// 消息、参与记录和房间在同一个事务中删除；数据库层的外键
// ON DELETE CASCADE 是第二道防线，这里显式删除保证逻辑自足。
func (r *GormRoomRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&domain.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&domain.Participant{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Room{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrRoomNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return repository.ErrRoomNotFound
		}
		return fmt.Errorf("gorm: delete room %d: %w", id, err)
	}
	return nil
}

// FindAllOrdered 实现按创建时间倒序返回所有房间
func (r *GormRoomRepository) FindAllOrdered(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find all rooms: %w", err)
	}
	return rooms, nil
}

// TouchLastActive 实现房间最后活跃时间的更新
func (r *GormRoomRepository) TouchLastActive(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&domain.Room{ID: id}).
		UpdateColumn("last_active", gorm.Expr("NOW(3)")).Error
	if err != nil {
		return fmt.Errorf("gorm: touch room %d last_active: %w", id, err)
	}
	return nil
}

// isDuplicateEntry 检查是否是 MySQL 唯一约束错误 (错误号 1062)
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
