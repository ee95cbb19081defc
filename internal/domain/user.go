// Package domain 定义了应用程序中使用的数据结构 (数据库模型)。
package domain

import "time"

// User 表示应用程序中的用户。
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(191);uniqueIndex:idx_username;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"` // 存储的是哈希后的密码，不能为空
	Email     string    `gorm:"type:varchar(191);uniqueIndex:idx_email" json:"email,omitempty"`
	AvatarURL string    `gorm:"type:varchar(512)" json:"avatar_url,omitempty"` // 头像地址，用于消息作者信息展示
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// AuthorInfo 是随消息一起下发的最小作者展示信息。
type AuthorInfo struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// Author 返回用户的展示信息。
func (u *User) Author() AuthorInfo {
	return AuthorInfo{Username: u.Username, AvatarURL: u.AvatarURL}
}
