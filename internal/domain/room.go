package domain

import "time"

// Room 表示一个聊天房间。
// 不变量：房间存续期间 CreatorID 对应的用户必须同时持有一条 Participant 记录，
// 创建房间与插入创建者参与记录在同一个事务中完成。
type Room struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(191);not null" json:"name"`          // 房间名，不能为空
	Description string    `gorm:"type:text" json:"description"`                    // 房间描述，可选
	CreatorID   uint      `gorm:"index:idx_creator_id;not null" json:"creator_id"` // 创建该房间的用户 ID
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	LastActive  time.Time `gorm:"index:idx_last_active" json:"-"`                  // 房间最后活跃时间，由后台任务更新
}

// RoomSummary 是房间列表/详情视图使用的聚合结构，附带参与者数量。
type RoomSummary struct {
	Room
	ParticipantCount int64 `json:"participant_count"`
}
