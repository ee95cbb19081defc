package repository

import (
	"context"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
)

// UserRepository 定义了用户数据的存储和检索操作。
type UserRepository interface {
	// FindByUsername 根据用户名查找用户。
	// 如果用户不存在，返回 ErrUserNotFound。
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByID 根据用户 ID 查找用户。
	// 如果用户不存在，返回 ErrUserNotFound。
	FindByID(ctx context.Context, id uint) (*domain.User, error)

	// FindByIDs 批量查找用户，结果以用户 ID 为键。
	// 未找到的 ID 不会出现在结果中，也不产生错误——调用方自行降级处理。
	FindByIDs(ctx context.Context, ids []uint) (map[uint]domain.User, error)

	// Save 保存用户信息。
	// 如果用户已存在 (基于 ID)，则更新；否则创建新用户。
	// 用户名或邮箱冲突时返回 ErrDuplicateEntry。
	Save(ctx context.Context, user *domain.User) error
}
