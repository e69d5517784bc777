package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Database          string `json:"database"`
}

type HealthHandler struct {
	db         Pinger
	appName    string
	appVersion string
}

func NewHealthHandler(db Pinger, appName, appVersion string) *HealthHandler {
	return &HealthHandler{db: db, appName: appName, appVersion: appVersion}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	status := http.StatusOK
	database := StatusOk
	if !h.databaseUp(c.Request.Context()) {
		status = http.StatusServiceUnavailable
		database = StatusDown
	}

	c.JSON(status, HealthResponse{
		AppName:           h.appName,
		AppVersion:        h.appVersion,
		CurrentSystemTime: time.Now().UTC().Format(time.RFC3339),
		Database:          database,
	})
}

func (h *HealthHandler) databaseUp(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(ctx) == nil
}
