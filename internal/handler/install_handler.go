package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/database"
)

// InstallHandler exposes the one-time schema bootstrap endpoint
type InstallHandler struct {
	db      *sqlx.DB
	enabled bool
	logger  *zap.Logger
}

// NewInstallHandler creates a new install handler
func NewInstallHandler(db *sqlx.DB, enabled bool, logger *zap.Logger) *InstallHandler {
	return &InstallHandler{db: db, enabled: enabled, logger: logger}
}

// Install creates the schema and seeds default data. The endpoint is
// idempotent and guarded by configuration.
func (h *InstallHandler) Install(c *gin.Context) {
	if !h.enabled {
		c.JSON(http.StatusForbidden, gin.H{"error": "Installation is disabled"})
		return
	}

	if err := database.EnsureSchema(c.Request.Context(), h.db, h.logger); err != nil {
		h.logger.Error("Installation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Installation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All tables created and default data inserted",
	})
}
