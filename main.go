package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/phonebook/phonebook/backend/internal/config"
	"github.com/phonebook/phonebook/backend/internal/contact"
	"github.com/phonebook/phonebook/backend/internal/contact/repository"
	"github.com/phonebook/phonebook/backend/internal/contact/service"
	"github.com/phonebook/phonebook/backend/internal/server"
	"github.com/phonebook/phonebook/backend/pkg/logger"
	"github.com/phonebook/phonebook/backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// LOG_LEVEL may still come from .env, so re-apply it once config is loaded
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	repo := repository.NewMemoryRepo(contact.Seed()...)
	svc := service.NewMemoryService(repo)

	if cfg.Metrics.Enabled {
		metrics.RegisterCollectors(prometheus.DefaultRegisterer)
		prometheus.MustRegister(metrics.NewContactsGauge(repo.Len))
	}

	srv := server.New(cfg, svc)
	logger.Infof("config loaded: env=%s static=%q metrics=%v", cfg.Server.Environment, cfg.Static.Dir, cfg.Metrics.Enabled)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("%v", err)
	}
}
