package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/middleware"
	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/service"
)

// AuthHandler handles admin authentication and profile endpoints
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login authenticates an admin and returns a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var input model.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, admin, err := h.auth.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": admin,
	})
}

// GetProfile returns the authenticated admin account
func (h *AuthHandler) GetProfile(c *gin.Context) {
	admin, err := h.auth.GetProfile(c.Request.Context(), c.GetInt(middleware.ContextAdminID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// UpdateProfile updates the authenticated admin's full name and email
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var input model.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.UpdateProfile(c.Request.Context(), c.GetInt(middleware.ContextAdminID), input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully"})
}

// ChangePassword changes the authenticated admin's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var input model.PasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), c.GetInt(middleware.ContextAdminID), input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}
