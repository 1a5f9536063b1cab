// internal/server/middleware.go
package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"activities-service/internal/common/metrics"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware assigns every request a UUID, reusing an inbound
// X-Request-ID when the caller supplied one.
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

func (s *Server) accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info("request handled", map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"durationMs": time.Since(start).Milliseconds(),
			"requestID":  c.GetString("requestID"),
		})
	}
}

func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start)

		metrics.RequestDuration.WithLabelValues(c.Request.Method, route, status).
			Observe(elapsed.Seconds())

		if s.obs != nil {
			s.obs.RecordRequest(c.Request.Context(), route, status)
			s.obs.RecordRequestDuration(c.Request.Context(), elapsed, route)
		}
	}
}
