package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and metadata endpoints
type SystemHandler struct {
	BaseHandler
	appName    string
	appVersion string
	startedAt  time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(appName, appVersion string) *SystemHandler {
	return &SystemHandler{
		appName:    appName,
		appVersion: appVersion,
		startedAt:  time.Now(),
	}
}

// Health handles GET /health and GET /api/v1/health
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"app":     h.appName,
		"version": h.appVersion,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}
