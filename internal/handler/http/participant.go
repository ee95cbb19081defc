package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/service"
)

// ParticipantHandler 封装了房间成员资格相关的 HTTP 处理逻辑
type ParticipantHandler struct {
	membershipService *service.MembershipService
}

// NewParticipantHandler 创建 ParticipantHandler 实例
func NewParticipantHandler(membershipService *service.MembershipService) *ParticipantHandler {
	if membershipService == nil {
		panic("MembershipService cannot be nil for ParticipantHandler")
	}
	return &ParticipantHandler{membershipService: membershipService}
}

// Join 处理 POST /chat-rooms/:id/participants：加入房间
func (h *ParticipantHandler) Join(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	participant, err := h.membershipService.Join(c.Request.Context(), roomID, userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"room_id": roomID, "user_id": userID}).
		Info("Handler.Join: user joined room")
	DataResponse(c, http.StatusCreated, participant)
}

// Leave 处理 DELETE /chat-rooms/:id/participants：退出房间。
// 未参与和创建者退出都按 400 返回（与创建者删除房间的引导语一起下发），
// 403 留给消息接口的参与者校验。
func (h *ParticipantHandler) Leave(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	if err := h.membershipService.Leave(c.Request.Context(), roomID, userID); err != nil {
		if errors.Is(err, service.ErrNotParticipant) {
			ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"room_id": roomID, "user_id": userID}).
		Info("Handler.Leave: user left room")
	SuccessResponse(c)
}
