package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
	"github.com/ekkymulia/seoul-festivmeet/internal/repository"
	"github.com/ekkymulia/seoul-festivmeet/internal/repository/mocks"
	"github.com/ekkymulia/seoul-festivmeet/internal/service"
	"github.com/ekkymulia/seoul-festivmeet/internal/tasks"
)

// capturePublisher 记录发布的事件，供断言发布顺序和内容。
type capturePublisher struct {
	roomIDs  []uint
	payloads [][]byte
	err      error
}

func (p *capturePublisher) PublishMessage(_ context.Context, roomID uint, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.roomIDs = append(p.roomIDs, roomID)
	p.payloads = append(p.payloads, payload)
	return nil
}

// captureEnqueuer 记录投递的后台任务。
type captureEnqueuer struct {
	tasks []*asynq.Task
}

func (e *captureEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	e.tasks = append(e.tasks, task)
	return &asynq.TaskInfo{}, nil
}

type messageFixture struct {
	svc             *service.MessageService
	messageRepo     *mocks.MessageRepository
	userRepo        *mocks.UserRepository
	participantRepo *mocks.ParticipantRepository
	roomRepo        *mocks.RoomRepository
	publisher       *capturePublisher
	enqueuer        *captureEnqueuer
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()
	f := &messageFixture{
		messageRepo:     new(mocks.MessageRepository),
		userRepo:        new(mocks.UserRepository),
		participantRepo: new(mocks.ParticipantRepository),
		roomRepo:        new(mocks.RoomRepository),
		publisher:       &capturePublisher{},
		enqueuer:        &captureEnqueuer{},
	}
	guard := service.NewGuard(f.roomRepo, f.participantRepo)
	f.svc = service.NewMessageService(f.messageRepo, f.userRepo, guard, f.publisher, f.enqueuer)
	return f
}

// --- 测试 Post 方法 ---

func TestMessageService_Post_Success(t *testing.T) {
	// Arrange
	f := newMessageFixture(t)
	ctx := context.Background()
	roomID, userID := uint(3), uint(42)

	f.participantRepo.On("Exists", ctx, roomID, userID).Return(true, nil).Once()
	f.messageRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.Message) bool {
		return m.RoomID == roomID && m.AuthorID == userID && m.Content == "hello"
	})).
		Run(func(args mock.Arguments) {
			msgArg := args.Get(1).(*domain.Message)
			msgArg.ID = 11
			msgArg.CreatedAt = time.Now()
		}).
		Return(nil).
		Once()
	f.userRepo.On("FindByID", ctx, userID).
		Return(&domain.User{ID: userID, Username: "alice", AvatarURL: "https://cdn.example.com/a.png"}, nil).Once()

	// Act
	message, err := f.svc.Post(ctx, roomID, userID, "hello")

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, uint(11), message.ID)

	// 已提交的消息应被富集后发布到房间主题
	require.Len(t, f.publisher.payloads, 1)
	assert.Equal(t, roomID, f.publisher.roomIDs[0])
	var event domain.MessageWithAuthor
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &event))
	assert.Equal(t, uint(11), event.ID)
	assert.Equal(t, "hello", event.Content)
	require.NotNil(t, event.Author)
	assert.Equal(t, "alice", event.Author.Username)

	// 房间活跃度任务应被投递
	require.Len(t, f.enqueuer.tasks, 1)
	assert.Equal(t, tasks.TypeRoomActivity, f.enqueuer.tasks[0].Type())

	f.messageRepo.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
}

func TestMessageService_Post_BlankContent(t *testing.T) {
	// Arrange
	f := newMessageFixture(t)
	ctx := context.Background()

	// Act: 内容只有空白字符
	_, err := f.svc.Post(ctx, 3, 42, "  \n\t ")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrEmptyContent))
	f.messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, f.publisher.payloads, "校验失败不应发布任何事件")
}

func TestMessageService_Post_NotParticipant(t *testing.T) {
	// Arrange
	f := newMessageFixture(t)
	ctx := context.Background()
	roomID, userID := uint(3), uint(99)

	f.participantRepo.On("Exists", ctx, roomID, userID).Return(false, nil).Once()

	// Act
	_, err := f.svc.Post(ctx, roomID, userID, "hello")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotParticipant), "非参与者发消息应被拒绝")
	f.messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageService_Post_PublishFailureDoesNotFailRequest(t *testing.T) {
	// Arrange: 发布失败只记录日志，持久化结果照常返回
	f := newMessageFixture(t)
	f.publisher.err = errors.New("redis connection lost")
	ctx := context.Background()
	roomID, userID := uint(3), uint(42)

	f.participantRepo.On("Exists", ctx, roomID, userID).Return(true, nil).Once()
	f.messageRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Message).ID = 12
		}).
		Return(nil).
		Once()
	f.userRepo.On("FindByID", ctx, userID).
		Return(&domain.User{ID: userID, Username: "alice"}, nil).Once()

	// Act
	message, err := f.svc.Post(ctx, roomID, userID, "hello")

	// Assert
	assert.NoError(t, err, "发布失败不应让请求失败")
	require.NotNil(t, message)
	assert.Equal(t, uint(12), message.ID)
}

func TestMessageService_Post_AuthorResolveFailurePublishesNullAuthor(t *testing.T) {
	// Arrange: 作者解析失败时事件以 author: null 发布
	f := newMessageFixture(t)
	ctx := context.Background()
	roomID, userID := uint(3), uint(42)

	f.participantRepo.On("Exists", ctx, roomID, userID).Return(true, nil).Once()
	f.messageRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Message).ID = 13
		}).
		Return(nil).
		Once()
	f.userRepo.On("FindByID", ctx, userID).
		Return(nil, repository.ErrUserNotFound).Once()

	// Act
	_, err := f.svc.Post(ctx, roomID, userID, "hello")

	// Assert
	assert.NoError(t, err)
	require.Len(t, f.publisher.payloads, 1)
	var event domain.MessageWithAuthor
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &event))
	assert.Nil(t, event.Author, "作者解析失败时事件应以 author: null 发布")
}

// --- 测试 List 方法 ---

func TestMessageService_List_EnrichesAuthors(t *testing.T) {
	// Arrange
	f := newMessageFixture(t)
	ctx := context.Background()
	roomID, callerID := uint(3), uint(42)

	messages := []domain.Message{
		{ID: 1, RoomID: roomID, AuthorID: 42, Content: "first"},
		{ID: 2, RoomID: roomID, AuthorID: 7, Content: "second"},
		{ID: 3, RoomID: roomID, AuthorID: 42, Content: "third"},
	}
	f.participantRepo.On("Exists", ctx, roomID, callerID).Return(true, nil).Once()
	f.messageRepo.On("ListByRoom", ctx, roomID).Return(messages, nil).Once()
	// 作者去重后批量解析
	f.userRepo.On("FindByIDs", ctx, []uint{42, 7}).
		Return(map[uint]domain.User{
			42: {ID: 42, Username: "alice"},
		}, nil).Once()

	// Act
	enriched, err := f.svc.List(ctx, roomID, callerID)

	// Assert
	assert.NoError(t, err)
	require.Len(t, enriched, 3)
	assert.Equal(t, "first", enriched[0].Content)
	require.NotNil(t, enriched[0].Author)
	assert.Equal(t, "alice", enriched[0].Author.Username)
	// 已删除的作者降级为占位信息
	require.NotNil(t, enriched[1].Author)
	assert.Equal(t, "Unknown user", enriched[1].Author.Username)
	f.userRepo.AssertExpectations(t)
}

func TestMessageService_List_NotParticipant(t *testing.T) {
	// Arrange
	f := newMessageFixture(t)
	ctx := context.Background()

	f.participantRepo.On("Exists", ctx, uint(3), uint(99)).Return(false, nil).Once()

	// Act
	_, err := f.svc.List(ctx, 3, 99)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotParticipant))
	f.messageRepo.AssertNotCalled(t, "ListByRoom", mock.Anything, mock.Anything)
}

func TestMessageService_List_Empty(t *testing.T) {
	// Arrange
	f := newMessageFixture(t)
	ctx := context.Background()
	roomID, callerID := uint(3), uint(42)

	f.participantRepo.On("Exists", ctx, roomID, callerID).Return(true, nil).Once()
	f.messageRepo.On("ListByRoom", ctx, roomID).Return([]domain.Message{}, nil).Once()
	f.userRepo.On("FindByIDs", ctx, []uint{}).Return(map[uint]domain.User{}, nil).Once()

	// Act
	enriched, err := f.svc.List(ctx, roomID, callerID)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, enriched)
}
