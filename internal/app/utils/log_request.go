package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LogRequest records which endpoint served the request.
func LogRequest(c *gin.Context, logger *zap.SugaredLogger) {
	logger.Debugw("Endpoint called",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"remote_addr", c.ClientIP(),
		"request_id", c.GetString("requestID"),
	)
}
