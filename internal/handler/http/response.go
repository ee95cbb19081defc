package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ekkymulia/seoul-festivmeet/internal/middleware"
)

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func DataResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"data": data})
}

func SuccessResponse(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// currentUserID 从 gin 上下文读取认证中间件注入的用户 ID。
// 返回 false 时已经写入了响应，调用方直接 return 即可。
func currentUserID(c *gin.Context) (uint, bool) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		logrus.Warn("Handler: user ID not found in context, middleware missing or failed?")
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return 0, false
	}
	userID, ok := userIDAny.(uint)
	if !ok {
		logrus.Error("Handler: user ID in context is not uint")
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error processing user ID")
		return 0, false
	}
	return userID, true
}

// roomIDParam 解析 URL 中的 :id 房间参数。
// 返回 false 时已经写入了响应。
func roomIDParam(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id64, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id64 == 0 {
		logrus.Warnf("Handler: invalid room ID format: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid room ID format")
		return 0, false
	}
	return uint(id64), true
}
