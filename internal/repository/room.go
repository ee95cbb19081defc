package repository

import (
	"context"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
)

// RoomRepository 定义了房间数据的存储和检索操作。
type RoomRepository interface {
	// FindByID 根据房间 ID 查找房间。
	// 如果房间不存在，返回 ErrRoomNotFound。
	FindByID(ctx context.Context, id uint) (*domain.Room, error)

	// CreateWithCreator 在同一个事务中插入房间记录和创建者的参与记录。
	// 任何一步失败都会整体回滚，不会出现没有创建者参与记录的房间。
	CreateWithCreator(ctx context.Context, room *domain.Room) error

	// Update 更新房间的名称和描述（UpdatedAt 由 GORM 自动填充）。
	// 房间不存在时返回 ErrRoomNotFound。
	Update(ctx context.Context, room *domain.Room) error

	// Delete 删除房间并级联删除其全部参与记录和消息记录。
	// 删除在同一个事务中完成，房间不存在时返回 ErrRoomNotFound。
	Delete(ctx context.Context, id uint) error

	// FindAllOrdered 按创建时间倒序返回所有房间。
	FindAllOrdered(ctx context.Context) ([]domain.Room, error)

	// TouchLastActive 更新房间的最后活跃时间，由后台任务调用。
	TouchLastActive(ctx context.Context, id uint) error
}
