package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/repository"
)

// Guard 负责房间级别的授权判定：是否为参与者、是否为创建者。
// 纯判定逻辑，无副作用；每次判定都读取最新已提交的数据，不做跨请求缓存。
type Guard struct {
	roomRepo        repository.RoomRepository
	participantRepo repository.ParticipantRepository
}

// NewGuard 创建 Guard 实例。
func NewGuard(roomRepo repository.RoomRepository, participantRepo repository.ParticipantRepository) *Guard {
	if roomRepo == nil {
		panic("RoomRepository cannot be nil for Guard")
	}
	if participantRepo == nil {
		panic("ParticipantRepository cannot be nil for Guard")
	}
	return &Guard{roomRepo: roomRepo, participantRepo: participantRepo}
}

// RequireParticipant 要求 userID 持有 (roomID, userID) 的参与记录，
// 否则返回 ErrNotParticipant。
func (g *Guard) RequireParticipant(ctx context.Context, roomID, userID uint) error {
	exists, err := g.participantRepo.Exists(ctx, roomID, userID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"room_id": roomID,
			"user_id": userID,
		}).Error("Guard: failed to check participant record")
		return ErrInternalServer
	}
	if !exists {
		return ErrNotParticipant
	}
	return nil
}

// RequireCreator 要求 userID 是 roomID 的创建者。
// 房间不存在返回 ErrRoomNotFound，非创建者返回 ErrNotCreator。
func (g *Guard) RequireCreator(ctx context.Context, roomID, userID uint) error {
	room, err := g.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		logrus.WithError(err).WithField("room_id", roomID).Error("Guard: failed to load room")
		return ErrInternalServer
	}
	if room.CreatorID != userID {
		return ErrNotCreator
	}
	return nil
}
