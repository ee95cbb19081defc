package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
	"github.com/ekkymulia/seoul-festivmeet/internal/repository"
)

// RoomService 负责房间生命周期相关的业务逻辑。
type RoomService struct {
	roomRepo        repository.RoomRepository
	participantRepo repository.ParticipantRepository
	guard           *Guard
}

// NewRoomService 创建 RoomService 实例。
func NewRoomService(roomRepo repository.RoomRepository, participantRepo repository.ParticipantRepository, guard *Guard) *RoomService {
	if roomRepo == nil {
		panic("RoomRepository cannot be nil for RoomService")
	}
	if participantRepo == nil {
		panic("ParticipantRepository cannot be nil for RoomService")
	}
	if guard == nil {
		panic("Guard cannot be nil for RoomService")
	}
	return &RoomService{
		roomRepo:        roomRepo,
		participantRepo: participantRepo,
		guard:           guard,
	}
}

// Create 创建一个新房间。
// 房间记录和创建者的参与记录在仓库层同一个事务中插入，
// 不会出现没有创建者参与记录的房间。
func (s *RoomService) Create(ctx context.Context, creatorID uint, name, description string) (*domain.Room, error) {
	logCtx := logrus.WithField("creator_id", creatorID)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}

	room := &domain.Room{
		Name:        name,
		Description: description,
		CreatorID:   creatorID,
	}
	if err := s.roomRepo.CreateWithCreator(ctx, room); err != nil {
		logCtx.WithError(err).Error("Failed to create room with creator participant")
		return nil, ErrInternalServer
	}

	logCtx.WithField("room_id", room.ID).Info("Room created successfully")
	return room, nil
}

// Update 更新房间的名称和描述，仅创建者可操作。
func (s *RoomService) Update(ctx context.Context, roomID, callerID uint, name, description string) (*domain.Room, error) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "caller_id": callerID})

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}

	if err := s.guard.RequireCreator(ctx, roomID, callerID); err != nil {
		return nil, err
	}

	room := &domain.Room{ID: roomID, Name: name, Description: description}
	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			// 授权检查和更新之间房间被删除
			return nil, ErrRoomNotFound
		}
		logCtx.WithError(err).Error("Failed to update room")
		return nil, ErrInternalServer
	}

	logCtx.Info("Room updated successfully")
	return room, nil
}

// Delete 删除房间，仅创建者可操作。
// 参与记录和消息记录随房间一起级联删除，不允许出现孤儿行。
func (s *RoomService) Delete(ctx context.Context, roomID, callerID uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "caller_id": callerID})

	if err := s.guard.RequireCreator(ctx, roomID, callerID); err != nil {
		return err
	}

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		logCtx.WithError(err).Error("Failed to delete room")
		return ErrInternalServer
	}

	logCtx.Info("Room deleted successfully (participants and messages cascaded)")
	return nil
}

// Get 返回房间详情、参与者数量，以及调用者是否为参与者。
// 任何已认证用户都可以查看房间元信息；isParticipant 供前端决定是否展示消息视图。
func (s *RoomService) Get(ctx context.Context, roomID, callerID uint) (*domain.RoomSummary, bool, error) {
	logCtx := logrus.WithField("room_id", roomID)

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, false, ErrRoomNotFound
		}
		logCtx.WithError(err).Error("Failed to find room")
		return nil, false, ErrInternalServer
	}

	count, err := s.participantRepo.CountByRoom(ctx, roomID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to count participants")
		return nil, false, ErrInternalServer
	}

	isParticipant, err := s.participantRepo.Exists(ctx, roomID, callerID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to check caller membership")
		return nil, false, ErrInternalServer
	}

	return &domain.RoomSummary{Room: *room, ParticipantCount: count}, isParticipant, nil
}

// List 按创建时间倒序返回所有房间，附带各房间的参与者数量。
func (s *RoomService) List(ctx context.Context) ([]domain.RoomSummary, error) {
	rooms, err := s.roomRepo.FindAllOrdered(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list rooms")
		return nil, ErrInternalServer
	}

	ids := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}
	counts, err := s.participantRepo.CountByRooms(ctx, ids)
	if err != nil {
		logrus.WithError(err).Error("Failed to count participants for room list")
		return nil, ErrInternalServer
	}

	summaries := make([]domain.RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summaries = append(summaries, domain.RoomSummary{
			Room:             room,
			ParticipantCount: counts[room.ID],
		})
	}
	return summaries, nil
}
