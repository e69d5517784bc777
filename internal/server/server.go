package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskflow/internal/auth"
	"taskflow/internal/authz"
	"taskflow/internal/config"
	"taskflow/internal/database"
	"taskflow/internal/directory"
	"taskflow/internal/filter"
	"taskflow/internal/handler"
	"taskflow/internal/repository"
	"taskflow/internal/service"
	"taskflow/internal/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	logger *zap.Logger
}

func Init(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.DSN(), cfg.LogLevel == "debug")
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.MigrateOnStart {
		if err := database.Migrate(sqlDB); err != nil {
			return nil, err
		}
	}

	tr, err := translator.New()
	if err != nil {
		return nil, err
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Core
	dir := directory.NewService(userRepo)
	tasks := service.NewTaskService(taskRepo, commentRepo, dir, authz.NewEngine(dir), filter.NewBuilder(dir))

	router := Router{
		Logger:          logger,
		Translator:      tr,
		Tokens:          auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry),
		Users:           dir,
		DefaultLanguage: cfg.DefaultLanguage,
		Health:          handler.NewHealthHandler(sqlDB, cfg.AppName, cfg.AppVersion),
		User:            handler.NewUserHandler(dir, tr),
		Task:            handler.NewTaskHandler(tasks, tr),
	}

	return &Server{
		Engine: router.Engine(),
		DB:     db,
		Config: cfg,
		logger: logger,
	}, nil
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case sig := <-quit:
		s.logger.Info("shutting down server", zap.Stringer("signal", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			s.logger.Warn("failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Info("server exited properly")
	return nil
}
