package main

import (
	_ "taskflow/docs"
	"taskflow/internal/config"
	"taskflow/internal/server"

	"go.uber.org/zap"
)

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// @title           Taskflow API
// @version         1.0
// @description     Task management with manager-scoped edit rights and multi-criteria task filters.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
	}()

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Fatal("server initialization failed", zap.Error(err))
	}

	if err := s.Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
