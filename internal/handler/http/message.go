package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/service"
)

// MessageHandler 封装了房间消息相关的 HTTP 处理逻辑
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler 创建 MessageHandler 实例
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	if messageService == nil {
		panic("MessageService cannot be nil for MessageHandler")
	}
	return &MessageHandler{messageService: messageService}
}

// PostMessageRequest 定义发送消息请求的结构体
type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// List 处理 GET /chat-rooms/:id/messages：按时间升序返回消息历史
func (h *MessageHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	messages, err := h.messageService.List(c.Request.Context(), roomID, userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	DataResponse(c, http.StatusOK, messages)
}

// Post 处理 POST /chat-rooms/:id/messages：发送消息
func (h *MessageHandler) Post(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.PostMessage: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Message content is required")
		return
	}

	message, err := h.messageService.Post(c.Request.Context(), roomID, userID, req.Content)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	DataResponse(c, http.StatusCreated, message)
}
