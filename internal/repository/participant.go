package repository

import (
	"context"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
)

// ParticipantRepository 定义了房间成员资格记录的存储和检索操作。
type ParticipantRepository interface {
	// Create 插入一条参与记录。
	// (RoomID, UserID) 违反唯一约束时返回 ErrDuplicateEntry，
	// 并发加入的裁决依赖数据库唯一索引而不是应用层检查。
	Create(ctx context.Context, participant *domain.Participant) error

	// Exists 检查 (roomID, userID) 的参与记录是否存在。
	// 每次调用都读取最新已提交的成员集合，不做跨请求缓存。
	Exists(ctx context.Context, roomID, userID uint) (bool, error)

	// Delete 删除 (roomID, userID) 的参与记录。
	// 记录不存在时返回 ErrParticipantNotFound。
	Delete(ctx context.Context, roomID, userID uint) error

	// CountByRoom 返回指定房间的参与者数量。
	CountByRoom(ctx context.Context, roomID uint) (int64, error)

	// CountByRooms 批量返回多个房间的参与者数量，结果以 roomID 为键。
	// 没有参与者的房间不会出现在结果中。
	CountByRooms(ctx context.Context, roomIDs []uint) (map[uint]int64, error)
}
