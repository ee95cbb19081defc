package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
	"github.com/ekkymulia/seoul-festivmeet/internal/repository"
)

// MembershipService 负责房间成员资格的加入/退出逻辑。
type MembershipService struct {
	roomRepo        repository.RoomRepository
	participantRepo repository.ParticipantRepository
}

// NewMembershipService 创建 MembershipService 实例。
func NewMembershipService(roomRepo repository.RoomRepository, participantRepo repository.ParticipantRepository) *MembershipService {
	if roomRepo == nil {
		panic("RoomRepository cannot be nil for MembershipService")
	}
	if participantRepo == nil {
		panic("ParticipantRepository cannot be nil for MembershipService")
	}
	return &MembershipService{roomRepo: roomRepo, participantRepo: participantRepo}
}

// Join 处理用户加入房间。
// 重复加入的判定交给数据库唯一索引：并发加入时失败方收到
// ErrAlreadyParticipant，而不是产生重复行或笼统的内部错误。
func (s *MembershipService) Join(ctx context.Context, roomID, userID uint) (*domain.Participant, error) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "user_id": userID})

	if _, err := s.roomRepo.FindByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			logCtx.Warn("Join failed: room not found")
			return nil, ErrRoomNotFound
		}
		logCtx.WithError(err).Error("Join failed: repository error loading room")
		return nil, ErrInternalServer
	}

	participant := &domain.Participant{RoomID: roomID, UserID: userID}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Join failed: already a participant")
			return nil, ErrAlreadyParticipant
		}
		logCtx.WithError(err).Error("Join failed: repository error creating participant")
		return nil, ErrInternalServer
	}

	logCtx.Info("User joined room successfully")
	return participant, nil
}

// Leave 处理用户退出房间。
// 创建者不能退出——只能删除房间；这是创建者参与记录不变量的业务层保障。
func (s *MembershipService) Leave(ctx context.Context, roomID, userID uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "user_id": userID})

	exists, err := s.participantRepo.Exists(ctx, roomID, userID)
	if err != nil {
		logCtx.WithError(err).Error("Leave failed: repository error checking participant")
		return ErrInternalServer
	}
	if !exists {
		logCtx.Warn("Leave failed: not a participant")
		return ErrNotParticipant
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			// 参与记录存在但房间不在：级联删除进行中，按未参与处理
			return ErrNotParticipant
		}
		logCtx.WithError(err).Error("Leave failed: repository error loading room")
		return ErrInternalServer
	}
	if room.CreatorID == userID {
		logCtx.Warn("Leave rejected: creator cannot leave own room")
		return ErrCreatorCannotLeave
	}

	if err := s.participantRepo.Delete(ctx, roomID, userID); err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			// 检查和删除之间被并发退出
			return ErrNotParticipant
		}
		logCtx.WithError(err).Error("Leave failed: repository error deleting participant")
		return ErrInternalServer
	}

	logCtx.Info("User left room successfully")
	return nil
}
