package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/service"
)

// HandleServiceError 将业务错误映射为 HTTP 状态码。
// 业务错误原样透传给客户端；只有未识别的内部错误被掩盖为通用 500。
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAuthenticationFailed):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrRegistrationFailed),
		errors.Is(err, service.ErrEmptyRoomName),
		errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrAlreadyParticipant),
		errors.Is(err, service.ErrCreatorCannotLeave):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotParticipant),
		errors.Is(err, service.ErrNotCreator):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrRoomNotFound), errors.Is(err, service.ErrUserNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
