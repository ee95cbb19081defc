package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	httpHandler "github.com/ekkymulia/seoul-festivmeet/internal/handler/http"
	"github.com/ekkymulia/seoul-festivmeet/internal/middleware"
	"github.com/ekkymulia/seoul-festivmeet/internal/repository/mocks"
	"github.com/ekkymulia/seoul-festivmeet/internal/service"
)

// noopPublisher 满足 service.Publisher，测试中不关心发布结果
type noopPublisher struct{}

func (noopPublisher) PublishMessage(context.Context, uint, []byte) error { return nil }

// handlerFixture 组装带 Mock 仓库的完整路由，
// 认证中间件被替换为直接注入 user_id 的桩。
type handlerFixture struct {
	router          *gin.Engine
	roomRepo        *mocks.RoomRepository
	participantRepo *mocks.ParticipantRepository
	messageRepo     *mocks.MessageRepository
	userRepo        *mocks.UserRepository
}

func newHandlerFixture(t *testing.T, userID uint) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		roomRepo:        new(mocks.RoomRepository),
		participantRepo: new(mocks.ParticipantRepository),
		messageRepo:     new(mocks.MessageRepository),
		userRepo:        new(mocks.UserRepository),
	}

	guard := service.NewGuard(f.roomRepo, f.participantRepo)
	roomService := service.NewRoomService(f.roomRepo, f.participantRepo, guard)
	membershipService := service.NewMembershipService(f.roomRepo, f.participantRepo)
	messageService := service.NewMessageService(f.messageRepo, f.userRepo, guard, noopPublisher{}, nil)

	roomHandler := httpHandler.NewRoomHandler(roomService)
	participantHandler := httpHandler.NewParticipantHandler(membershipService)
	messageHandler := httpHandler.NewMessageHandler(messageService)

	router := gin.New()
	// 认证桩：模拟 Auth 中间件注入的 user_id
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	})

	rooms := router.Group("/api/chat-rooms")
	{
		rooms.GET("", roomHandler.List)
		rooms.POST("", roomHandler.Create)
		rooms.GET("/:id", roomHandler.Get)
		rooms.PUT("/:id", roomHandler.Update)
		rooms.DELETE("/:id", roomHandler.Delete)
		rooms.POST("/:id/participants", participantHandler.Join)
		rooms.DELETE("/:id/participants", participantHandler.Leave)
		rooms.GET("/:id/messages", messageHandler.List)
		rooms.POST("/:id/messages", messageHandler.Post)
	}

	f.router = router
	return f
}

// do 发送一个 JSON 请求并返回响应记录器
func (f *handlerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}
