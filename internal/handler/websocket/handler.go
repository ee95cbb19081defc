package websocket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/hub"
	"github.com/ekkymulia/seoul-festivmeet/internal/middleware"
	"github.com/ekkymulia/seoul-festivmeet/internal/service"
)

// WebSocketHandler 负责处理 WebSocket 升级请求和订阅注册。
// 订阅句柄只发给通过参与者校验的用户；重连会重新走完整校验。
type WebSocketHandler struct {
	upgrader websocket.Upgrader
	hub      *hub.Hub
	guard    *service.Guard
}

// NewWebSocketHandler 创建 WebSocketHandler 实例
func NewWebSocketHandler(hubInstance *hub.Hub, guard *service.Guard) *WebSocketHandler {
	if hubInstance == nil {
		panic("Hub cannot be nil for WebSocketHandler")
	}
	if guard == nil {
		panic("Guard cannot be nil for WebSocketHandler")
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// TODO: 生产环境应校验 Origin 白名单
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return &WebSocketHandler{
		upgrader: upgrader,
		hub:      hubInstance,
		guard:    guard,
	}
}

// HandleConnection 处理订阅连接请求。
// URL 预期格式: /ws/chat-rooms/{id}
func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	// 1. 获取认证用户 ID (由 Auth 中间件设置)
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		logrus.Warn("WS Handler: user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	userID, ok := userIDAny.(uint)
	if !ok {
		logrus.Error("WS Handler: user ID in context is not uint")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	logCtx := logrus.WithField("user_id", userID)

	// 2. 获取并验证房间 ID (从 URL 参数)
	roomIDStr := c.Param("id")
	roomID64, err := strconv.ParseUint(roomIDStr, 10, 32)
	if err != nil {
		logCtx.WithError(err).Warnf("WS Handler: invalid room ID format: %s", roomIDStr)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID format"})
		return
	}
	roomID := uint(roomID64)
	logCtx = logCtx.WithField("room_id", roomID)

	// 3. 参与者校验：非参与者拿不到订阅句柄
	if err := h.guard.RequireParticipant(c.Request.Context(), roomID, userID); err != nil {
		switch err {
		case service.ErrNotParticipant:
			logCtx.Warn("WS Handler: subscription rejected, not a participant")
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logCtx.WithError(err).Error("WS Handler: error checking participation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate subscription"})
		}
		return
	}

	// 4. 升级 HTTP 连接到 WebSocket
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 已经写入了 HTTP 错误响应
		logCtx.WithError(err).Error("WS Handler: failed to upgrade connection")
		return
	}
	logCtx.Info("WS Handler: connection upgraded to WebSocket")

	// 5. 注册订阅并启动读写泵
	client := hub.NewClient(h.hub, conn, roomID, userID)
	registerMsg := hub.HubMessage{Type: "register", Client: client}
	if !h.hub.QueueMessage(registerMsg) {
		logCtx.Error("WS Handler: hub message channel full, failed to register client")
		client.CloseConn()
		return
	}

	client.Run()
	logCtx.Info("WS Handler: client subscription registered")
}
