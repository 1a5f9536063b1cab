// Package server wires the HTTP surface of the activities API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activities-service/internal/common/config"
	"activities-service/internal/common/errors"
	"activities-service/internal/common/logger"
	"activities-service/internal/common/observability"
	"activities-service/internal/registry"
)

// Server owns the router and the collaborators the handlers need.
type Server struct {
	cfg      *config.Config
	registry *registry.Registry
	logger   logger.Logger
	errs     *errors.ErrorHandler
	obs      *observability.Observability
	router   *gin.Engine
}

// Option configures optional Server collaborators.
type Option func(*Server)

// WithObservability attaches an otel meter to the request middleware.
func WithObservability(obs *observability.Observability) Option {
	return func(s *Server) {
		s.obs = obs
	}
}

func New(cfg *config.Config, reg *registry.Registry, log logger.Logger, opts ...Option) *Server {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		registry: reg,
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
		errs:     errors.NewErrorHandler(log),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.buildRouter()
	return s
}

// Router exposes the underlying gin engine, primarily for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestIDMiddleware())
	router.Use(s.accessLogMiddleware())
	router.Use(s.metricsMiddleware())

	router.GET("/", s.handleRoot)
	router.Static("/static", s.cfg.Server.StaticDir)

	router.GET("/activities", s.handleListActivities)
	router.POST("/activities/:name/signup", s.handleSignup)
	router.POST("/activities/:name/unregister", s.handleUnregister)

	router.GET("/health", s.handleHealth)
	router.GET("/ready", s.handleReady)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// HTTPServer builds the net/http server around the router using the
// configured timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeout) * time.Millisecond,
	}
}
