package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/service"
)

// RoomHandler 封装了与房间生命周期相关的 HTTP 处理逻辑
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler 创建 RoomHandler 实例
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	if roomService == nil {
		panic("RoomService cannot be nil for RoomHandler")
	}
	return &RoomHandler{roomService: roomService}
}

// RoomRequest 定义创建/更新房间请求的结构体
type RoomRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// List 处理 GET /chat-rooms：按创建时间倒序返回所有房间
func (h *RoomHandler) List(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	rooms, err := h.roomService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	DataResponse(c, http.StatusOK, rooms)
}

// Create 处理 POST /chat-rooms：创建房间并把创建者自动加入
func (h *RoomHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateRoom: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Room name is required")
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"room_id": room.ID, "creator_id": userID}).
		Info("Handler.CreateRoom: room created successfully")
	DataResponse(c, http.StatusCreated, room)
}

// Get 处理 GET /chat-rooms/:id：返回房间详情和调用者的成员状态
func (h *RoomHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	summary, isParticipant, err := h.roomService.Get(c.Request.Context(), roomID, userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summary, "isParticipant": isParticipant})
}

// Update 处理 PUT /chat-rooms/:id：仅创建者可更新名称和描述
func (h *RoomHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateRoom: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Room name is required")
		return
	}

	room, err := h.roomService.Update(c.Request.Context(), roomID, userID, req.Name, req.Description)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	DataResponse(c, http.StatusOK, room)
}

// Delete 处理 DELETE /chat-rooms/:id：仅创建者可删除，级联清理参与者和消息
func (h *RoomHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), roomID, userID); err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"room_id": roomID, "caller_id": userID}).
		Info("Handler.DeleteRoom: room deleted successfully")
	SuccessResponse(c)
}
