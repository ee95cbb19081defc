package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
	"github.com/ekkymulia/seoul-festivmeet/internal/repository"
	"github.com/ekkymulia/seoul-festivmeet/internal/tasks"
)

// Publisher 将已提交的消息事件发布到对应房间的主题。
// 同一房间内的发布顺序即提交顺序，订阅端按发布顺序收到事件。
type Publisher interface {
	PublishMessage(ctx context.Context, roomID uint, payload []byte) error
}

// TaskEnqueuer 向后台任务队列投递任务；*asynq.Client 满足该接口。
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// MessageService 负责消息的校验、持久化、历史查询和发布。
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	guard       *Guard
	publisher   Publisher
	enqueuer    TaskEnqueuer // 可为 nil，此时跳过后台活跃度任务
}

// NewMessageService 创建 MessageService 实例。
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository,
	guard *Guard, publisher Publisher, enqueuer TaskEnqueuer) *MessageService {
	if messageRepo == nil {
		panic("MessageRepository cannot be nil for MessageService")
	}
	if userRepo == nil {
		panic("UserRepository cannot be nil for MessageService")
	}
	if guard == nil {
		panic("Guard cannot be nil for MessageService")
	}
	if publisher == nil {
		panic("Publisher cannot be nil for MessageService")
	}
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		guard:       guard,
		publisher:   publisher,
		enqueuer:    enqueuer,
	}
}

// Post 校验并持久化一条消息，随后将富集后的事件发布到房间主题。
// 发布失败不回滚持久化也不报错给调用者：断连的订阅端在重连时
// 通过 List 重新拉取历史来补齐缺口。
func (s *MessageService) Post(ctx context.Context, roomID, userID uint, content string) (*domain.Message, error) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "user_id": userID})

	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	if err := s.guard.RequireParticipant(ctx, roomID, userID); err != nil {
		return nil, err
	}

	message := &domain.Message{
		RoomID:   roomID,
		AuthorID: userID,
		Content:  content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		logCtx.WithError(err).Error("Failed to persist message")
		return nil, ErrInternalServer
	}
	logCtx = logCtx.WithField("message_id", message.ID)

	s.publishCommitted(ctx, message)
	s.enqueueRoomActivity(roomID)

	logCtx.Info("Message posted successfully")
	return message, nil
}

// List 返回房间的全部消息，升序排列，并批量解析作者展示信息。
// 单个作者解析失败降级为占位信息，不影响整个列表。
func (s *MessageService) List(ctx context.Context, roomID, userID uint) ([]domain.MessageWithAuthor, error) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "user_id": userID})

	if err := s.guard.RequireParticipant(ctx, roomID, userID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListByRoom(ctx, roomID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to list messages")
		return nil, ErrInternalServer
	}

	authorIDs := make([]uint, 0, len(messages))
	seen := make(map[uint]bool, len(messages))
	for _, m := range messages {
		if !seen[m.AuthorID] {
			seen[m.AuthorID] = true
			authorIDs = append(authorIDs, m.AuthorID)
		}
	}
	authors, err := s.userRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		// 作者解析失败不拖垮历史查询，全部降级为占位信息
		logCtx.WithError(err).Warn("Failed to resolve message authors, using placeholders")
		authors = map[uint]domain.User{}
	}

	enriched := make([]domain.MessageWithAuthor, 0, len(messages))
	for _, m := range messages {
		enriched = append(enriched, enrich(m, authors))
	}
	return enriched, nil
}

// publishCommitted 将已提交的消息富集后发布到房间主题。
// 作者解析失败时以 author: null 发布，事件本身不丢弃。
func (s *MessageService) publishCommitted(ctx context.Context, message *domain.Message) {
	logCtx := logrus.WithFields(logrus.Fields{
		"room_id":    message.RoomID,
		"message_id": message.ID,
	})

	event := domain.MessageWithAuthor{
		ID:        message.ID,
		RoomID:    message.RoomID,
		AuthorID:  message.AuthorID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
	author, err := s.userRepo.FindByID(ctx, message.AuthorID)
	if err != nil {
		logCtx.WithError(err).Warn("Failed to resolve author for broadcast, publishing without author info")
	} else {
		info := author.Author()
		event.Author = &info
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logCtx.WithError(err).Error("Failed to marshal message event")
		return
	}
	if err := s.publisher.PublishMessage(ctx, message.RoomID, payload); err != nil {
		logCtx.WithError(err).Error("Failed to publish message event")
	}
}

// enqueueRoomActivity 投递房间活跃度更新任务，失败只记录不阻断请求。
func (s *MessageService) enqueueRoomActivity(roomID uint) {
	if s.enqueuer == nil {
		return
	}
	task, err := tasks.NewRoomActivityTask(roomID)
	if err != nil {
		logrus.WithError(err).WithField("room_id", roomID).Error("Failed to build room activity task")
		return
	}
	if _, err := s.enqueuer.Enqueue(task, asynq.Queue("low")); err != nil {
		logrus.WithError(err).WithField("room_id", roomID).Warn("Failed to enqueue room activity task")
	}
}

// enrich 将消息和已解析的作者集合组合为下发结构，缺失作者时使用占位信息。
func enrich(m domain.Message, authors map[uint]domain.User) domain.MessageWithAuthor {
	out := domain.MessageWithAuthor{
		ID:        m.ID,
		RoomID:    m.RoomID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if author, ok := authors[m.AuthorID]; ok {
		info := author.Author()
		out.Author = &info
	} else {
		out.Author = &domain.AuthorInfo{Username: "Unknown user"}
	}
	return out
}
