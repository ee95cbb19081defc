package domain

import "time"

// Message 表示房间内的一条文本消息。
// 消息一旦创建即不可变，仅在房间删除时随级联删除一起消失；
// 房间内按 CreatedAt 排序，时间相同时按 ID（插入顺序）排序。
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"index:idx_room_created,priority:1;not null" json:"room_id"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id"` // 统一使用 author_id 作为作者外键名
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_room_created,priority:2" json:"created_at"`
}

// MessageWithAuthor 是消息历史和实时事件共用的下发结构。
// Author 为 nil 表示作者信息解析失败或作者已不存在，消息本身仍然下发。
type MessageWithAuthor struct {
	ID        uint        `json:"id"`
	RoomID    uint        `json:"room_id"`
	AuthorID  uint        `json:"author_id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	Author    *AuthorInfo `json:"author"`
}
