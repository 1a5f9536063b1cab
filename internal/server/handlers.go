// internal/server/handlers.go
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"activities-service/internal/common/errors"
	"activities-service/internal/common/metrics"
	"activities-service/internal/models"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
}

func (s *Server) handleListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.List())
}

func (s *Server) handleSignup(c *gin.Context) {
	activityName := c.Param("name")
	email := c.Query("email")

	if email == "" {
		metrics.SignupsFailed.WithLabelValues(activityName, string(errors.ErrCodeEmailRequired)).Inc()
		s.errs.HandleRequestError(c, errors.NewEmailRequiredError())
		return
	}

	if err := s.registry.Signup(activityName, email); err != nil {
		metrics.SignupsFailed.WithLabelValues(activityName, string(errors.CodeOf(err))).Inc()
		s.errs.HandleRequestError(c, err)
		return
	}

	metrics.SignupsCompleted.WithLabelValues(activityName).Inc()
	s.logger.Info("participant signed up", map[string]interface{}{
		"activity": activityName,
		"email":    email,
	})

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

func (s *Server) handleUnregister(c *gin.Context) {
	activityName := c.Param("name")
	email := c.Query("email")

	if email == "" {
		metrics.UnregistersFailed.WithLabelValues(activityName, string(errors.ErrCodeEmailRequired)).Inc()
		s.errs.HandleRequestError(c, errors.NewEmailRequiredError())
		return
	}

	if err := s.registry.Unregister(activityName, email); err != nil {
		metrics.UnregistersFailed.WithLabelValues(activityName, string(errors.CodeOf(err))).Inc()
		s.errs.HandleRequestError(c, err)
		return
	}

	metrics.UnregistersCompleted.WithLabelValues(activityName).Inc()
	s.logger.Info("participant unregistered", map[string]interface{}{
		"activity": activityName,
		"email":    email,
	})

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Format(time.RFC3339),
	})
}
