package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/service"
)

// DashboardHandler handles the admin dashboard endpoint
type DashboardHandler struct {
	dashboard *service.DashboardService
	logger    *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

// Get returns entity counts plus recent messages and news
func (h *DashboardHandler) Get(c *gin.Context) {
	dash, err := h.dashboard.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
