package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/service"
	"github.com/yourorg/transport-cms/internal/storage"
)

// PublicHandler serves the read side of the public API plus the contact
// form submission
type PublicHandler struct {
	leaders       *service.LeaderService
	services      *service.BureauService
	news          *service.NewsService
	announcements *service.AnnouncementService
	contact       *service.ContactService
	settings      *service.SettingsService
	statistics    *service.StatisticsService
	defaultHost   string
	logger        *zap.Logger
}

// NewPublicHandler creates a new public API handler
func NewPublicHandler(
	leaders *service.LeaderService,
	services *service.BureauService,
	news *service.NewsService,
	announcements *service.AnnouncementService,
	contact *service.ContactService,
	settings *service.SettingsService,
	statistics *service.StatisticsService,
	defaultHost string,
	logger *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		leaders:       leaders,
		services:      services,
		news:          news,
		announcements: announcements,
		contact:       contact,
		settings:      settings,
		statistics:    statistics,
		defaultHost:   defaultHost,
		logger:        logger,
	}
}

// GetSettings returns all site settings
func (h *PublicHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetStatistics returns all headline statistics
func (h *PublicHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statistics.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetLeaders returns active leaders with absolute portrait URLs
func (h *PublicHandler) GetLeaders(c *gin.Context) {
	leaders, err := h.leaders.List(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}

	base := service.BaseURL(c.Request, h.defaultHost)
	for i := range leaders {
		leaders[i].ImageURL = service.NormalizeRefPtr(leaders[i].ImageURL, storage.BucketImages, base)
	}
	c.JSON(http.StatusOK, leaders)
}

// GetServices returns active services with absolute illustration URLs
func (h *PublicHandler) GetServices(c *gin.Context) {
	services, err := h.services.List(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}

	base := service.BaseURL(c.Request, h.defaultHost)
	for i := range services {
		services[i].ImageURL = service.NormalizeRefPtr(services[i].ImageURL, storage.BucketImages, base)
	}
	c.JSON(http.StatusOK, services)
}

// GetNews returns published articles with absolute image URLs
func (h *PublicHandler) GetNews(c *gin.Context) {
	news, err := h.news.List(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}

	base := service.BaseURL(c.Request, h.defaultHost)
	for i := range news {
		news[i].ImageURL = service.NormalizeRefPtr(news[i].ImageURL, storage.BucketMedia, base)
	}
	c.JSON(http.StatusOK, news)
}

// GetNewsByID returns one published article
func (h *PublicHandler) GetNewsByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	article, err := h.news.GetPublished(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	base := service.BaseURL(c.Request, h.defaultHost)
	article.ImageURL = service.NormalizeRefPtr(article.ImageURL, storage.BucketMedia, base)
	c.JSON(http.StatusOK, article)
}

// GetAnnouncements returns published announcements with absolute
// attachment URLs
func (h *PublicHandler) GetAnnouncements(c *gin.Context) {
	announcements, err := h.announcements.List(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}

	base := service.BaseURL(c.Request, h.defaultHost)
	for i := range announcements {
		announcements[i].AttachmentURL = service.NormalizeRefPtr(announcements[i].AttachmentURL, storage.BucketMedia, base)
	}
	c.JSON(http.StatusOK, announcements)
}

// GetConfig returns the API base URL for the frontend
func (h *PublicHandler) GetConfig(c *gin.Context) {
	base := service.BaseURL(c.Request, h.defaultHost)
	c.JSON(http.StatusOK, gin.H{"apiBaseUrl": base + "/api"})
}

// SubmitContact accepts a contact form submission with an optional
// attachment
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var input model.ContactInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	file, err := formFile(c, "attachment")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if _, err := h.contact.Submit(c.Request.Context(), input, file); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
}
