package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/middleware"
	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/service"
)

// NewsHandler handles admin news management endpoints
type NewsHandler struct {
	news   *service.NewsService
	logger *zap.Logger
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(news *service.NewsService, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{news: news, logger: logger}
}

// List returns all news articles, including unpublished ones
func (h *NewsHandler) List(c *gin.Context) {
	news, err := h.news.List(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// Get returns a single article for editing
func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	article, err := h.news.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Create adds an article with an optional featured image upload
func (h *NewsHandler) Create(c *gin.Context) {
	var input model.NewsInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.news.Create(c.Request.Context(), input, file, c.GetString(middleware.ContextAdminUsername))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "News added successfully",
		"news":    article,
	})
}

// Update modifies an article
func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input model.NewsInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.news.Update(c.Request.Context(), id, input, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "News updated successfully",
		"news":    article,
	})
}

// Delete removes an article and its featured image
func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.news.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "News deleted successfully"})
}
