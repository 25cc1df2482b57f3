package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/service"
)

// LeaderHandler handles admin leader management endpoints
type LeaderHandler struct {
	leaders *service.LeaderService
	logger  *zap.Logger
}

// NewLeaderHandler creates a new leader handler
func NewLeaderHandler(leaders *service.LeaderService, logger *zap.Logger) *LeaderHandler {
	return &LeaderHandler{leaders: leaders, logger: logger}
}

// List returns all leaders, including inactive ones
func (h *LeaderHandler) List(c *gin.Context) {
	leaders, err := h.leaders.List(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaders)
}

// Get returns a single leader for editing
func (h *LeaderHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	leader, err := h.leaders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leader)
}

// Create adds a leader with an optional portrait upload
func (h *LeaderHandler) Create(c *gin.Context) {
	var input model.LeaderInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leader, err := h.leaders.Create(c.Request.Context(), input, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Leader added successfully",
		"leader":  leader,
	})
}

// Update modifies a leader, replacing the portrait if a new file is
// uploaded
func (h *LeaderHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input model.LeaderInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leader, err := h.leaders.Update(c.Request.Context(), id, input, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Leader updated successfully",
		"leader":  leader,
	})
}

// Delete removes a leader and its portrait
func (h *LeaderHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.leaders.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Leader deleted successfully"})
}
