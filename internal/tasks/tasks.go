// Package tasks 定义后台任务类型和载荷的编解码。
package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// 任务类型常量
const (
	// TypeRoomActivity 房间活跃度更新任务：消息提交后异步更新 last_active
	TypeRoomActivity = "room:touch"
)

// RoomActivityPayload 定义房间活跃度任务的数据结构
type RoomActivityPayload struct {
	RoomID     uint      `json:"room_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewRoomActivityTask 创建一个房间活跃度更新任务
func NewRoomActivityTask(roomID uint) (*asynq.Task, error) {
	payload := RoomActivityPayload{
		RoomID:     roomID,
		OccurredAt: time.Now(),
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("tasks: marshal room activity payload: %w", err)
	}
	return asynq.NewTask(TypeRoomActivity, payloadBytes), nil
}
