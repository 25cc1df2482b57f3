package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/service"
)

// StatisticsHandler handles admin statistics endpoints
type StatisticsHandler struct {
	statistics *service.StatisticsService
	logger     *zap.Logger
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(statistics *service.StatisticsService, logger *zap.Logger) *StatisticsHandler {
	return &StatisticsHandler{statistics: statistics, logger: logger}
}

// List returns all statistics
func (h *StatisticsHandler) List(c *gin.Context) {
	stats, err := h.statistics.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Update applies a bulk statistics update
func (h *StatisticsHandler) Update(c *gin.Context) {
	var inputs []model.StatisticInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.statistics.Update(c.Request.Context(), inputs); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Statistics updated successfully"})
}
