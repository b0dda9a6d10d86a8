package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phonebook/phonebook/backend/handlers"
	"github.com/phonebook/phonebook/backend/internal/config"
	"github.com/phonebook/phonebook/backend/internal/contact/handler"
	"github.com/phonebook/phonebook/backend/internal/contact/service"
	"github.com/phonebook/phonebook/backend/pkg/logger"
	"github.com/phonebook/phonebook/backend/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the phonebook HTTP server
type Server struct {
	router *gin.Engine
	server *http.Server
}

// NewRouter builds the gin engine with the middleware chain and every route.
// Static files are answered before any API route.
func NewRouter(cfg *config.Config, svc service.Service) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestLogger(),
		gin.Recovery(),
		middleware.Metrics(),
		middleware.CORS(),
		middleware.Static(cfg.Static.Dir),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	handlers.RegisterSwagger(r)
	handler.RegisterContactRoutes(r, svc)

	return r
}

// New creates a new HTTP server
func New(cfg *config.Config, svc service.Service) *Server {
	router := NewRouter(cfg, svc)
	return &Server{
		router: router,
		server: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until the server is shut down.
func (s *Server) Start() error {
	logger.Infof("Server running on %s", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Infof("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	logger.Infof("HTTP server shut down complete")
	return nil
}
