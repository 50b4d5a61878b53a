package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/strawberrytart/auction-house/pkg/logger"
)

// RequestLogger logs incoming requests with timing
func RequestLogger(c *gin.Context) {
	start := time.Now()

	c.Next()

	logger.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}
