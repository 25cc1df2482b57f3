package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/middleware"
	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/service"
)

// AnnouncementHandler handles admin announcement management endpoints
type AnnouncementHandler struct {
	announcements *service.AnnouncementService
	logger        *zap.Logger
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcements *service.AnnouncementService, logger *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements, logger: logger}
}

// List returns all announcements, including unpublished ones
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.announcements.List(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

// Get returns a single announcement for editing
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ann, err := h.announcements.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ann)
}

// Create adds an announcement with an optional attachment upload
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var input model.AnnouncementInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := formFile(c, "attachment")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ann, err := h.announcements.Create(c.Request.Context(), input, file, c.GetString(middleware.ContextAdminUsername))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Announcement added successfully",
		"announcement": ann,
	})
}

// Update modifies an announcement
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input model.AnnouncementInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := formFile(c, "attachment")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ann, err := h.announcements.Update(c.Request.Context(), id, input, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Announcement updated successfully",
		"announcement": ann,
	})
}

// Delete removes an announcement and its attachment
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.announcements.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Announcement deleted successfully"})
}
