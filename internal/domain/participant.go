package domain

import "time"

// Participant 表示某个用户在某个房间中的成员资格记录。
// (RoomID, UserID) 组合在数据库层有唯一索引，同一用户不能重复加入同一房间；
// 并发加入时由唯一约束裁决，失败方收到重复键错误而不是产生重复行。
type Participant struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	RoomID   uint      `gorm:"uniqueIndex:idx_room_user;not null" json:"room_id"`
	UserID   uint      `gorm:"uniqueIndex:idx_room_user;not null" json:"user_id"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
