package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/service"
	"github.com/yourorg/transport-cms/internal/utils"
)

// MessageHandler handles admin contact message endpoints
type MessageHandler struct {
	messages *service.ContactService
	logger   *zap.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messages *service.ContactService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, logger: logger}
}

// List returns contact messages, newest first, and marks them read
func (h *MessageHandler) List(c *gin.Context) {
	params := utils.ParsePaginationParams(c, 50, 200)
	offset := utils.CalculateOffset(params.Page, params.Limit)

	messages, err := h.messages.List(c.Request.Context(), params.Limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Get returns a single message and marks it read
func (h *MessageHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	msg, err := h.messages.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// Delete removes a message and its attachment
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.messages.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message deleted successfully"})
}
