package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/repository"
	"github.com/ekkymulia/seoul-festivmeet/internal/tasks"
)

// RoomActivityHandler 处理房间活跃度更新任务
type RoomActivityHandler struct {
	roomRepo repository.RoomRepository
}

// NewRoomActivityHandler 创建 RoomActivityHandler 实例
func NewRoomActivityHandler(roomRepo repository.RoomRepository) *RoomActivityHandler {
	if roomRepo == nil {
		panic("RoomRepository cannot be nil for RoomActivityHandler")
	}
	return &RoomActivityHandler{roomRepo: roomRepo}
}

// ProcessTask 解析载荷并更新房间的 last_active。
// 房间在任务执行前被删除属于正常情况，直接完成任务不重试。
func (h *RoomActivityHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload tasks.RoomActivityPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// 载荷损坏，重试无意义
		return fmt.Errorf("unmarshal room activity payload: %v: %w", err, asynq.SkipRetry)
	}

	logCtx := logrus.WithFields(logrus.Fields{
		"component": "worker",
		"task_type": task.Type(),
		"room_id":   payload.RoomID,
	})

	if err := h.roomRepo.TouchLastActive(ctx, payload.RoomID); err != nil {
		logCtx.WithError(err).Warn("Failed to touch room last_active")
		return err // 交给 asynq 重试
	}

	logCtx.Debug("Room last_active updated")
	return nil
}
