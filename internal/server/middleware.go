package server

import (
	"time"

	"idea-auction/monitoring"
	"idea-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and feeds the
// latency histogram
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	latency := time.Since(start)
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	monitoring.ObserveRequest(c.Request.Method, route, c.Writer.Status(), latency)

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": latency.String(),
	})
}
