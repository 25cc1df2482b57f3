package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/service"
)

// ServiceHandler handles admin service catalog endpoints
type ServiceHandler struct {
	services *service.BureauService
	logger   *zap.Logger
}

// NewServiceHandler creates a new service catalog handler
func NewServiceHandler(services *service.BureauService, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{services: services, logger: logger}
}

// List returns all services, including inactive ones
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.services.List(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Get returns a single service for editing
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	svc, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Create adds a service with an optional illustration upload
func (h *ServiceHandler) Create(c *gin.Context) {
	var input model.ServiceInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.services.Create(c.Request.Context(), input, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Service added successfully",
		"service": svc,
	})
}

// Update modifies a service
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input model.ServiceInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.services.Update(c.Request.Context(), id, input, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service updated successfully",
		"service": svc,
	})
}

// Delete removes a service
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service deleted successfully"})
}
