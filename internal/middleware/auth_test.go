package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourorg/transport-cms/internal/config"
	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/service"
)

type singleAdminStore struct {
	admin model.AdminUser
}

func (s *singleAdminStore) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	if username != s.admin.Username {
		return nil, model.ErrNotFound
	}
	admin := s.admin
	return &admin, nil
}

func (s *singleAdminStore) GetByID(ctx context.Context, id int) (*model.AdminUser, error) {
	if id != s.admin.ID {
		return nil, model.ErrNotFound
	}
	admin := s.admin
	return &admin, nil
}

func (s *singleAdminStore) UpdateLastLogin(ctx context.Context, id int) error { return nil }

func (s *singleAdminStore) UpdateProfile(ctx context.Context, id int, fullName, email string) error {
	return nil
}

func (s *singleAdminStore) UpdatePassword(ctx context.Context, id int, hash string) error {
	return nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &singleAdminStore{admin: model.AdminUser{
		ID:       1,
		Username: "admin",
		Password: string(hash),
		Role:     "super_admin",
		IsActive: true,
	}}
	auth := service.NewAuthService(store, config.AuthConfig{JWTSecret: "test-secret", TokenDuration: time.Hour}, zap.NewNop())

	token, _, err := auth.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/admin/dashboard", AdminAuth(auth, zap.NewNop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"admin_id": c.GetInt(ContextAdminID),
			"username": c.GetString(ContextAdminUsername),
			"role":     c.GetString(ContextAdminRole),
		})
	})
	return router, token
}

func TestAdminAuthAllowsValidToken(t *testing.T) {
	router, token := newAuthRouter(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
	assert.Contains(t, w.Body.String(), `"admin_id":1`)
}

func TestAdminAuthRejectsMissingHeader(t *testing.T) {
	router, _ := newAuthRouter(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthRejectsMalformedHeader(t *testing.T) {
	router, token := newAuthRouter(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthRejectsTamperedToken(t *testing.T) {
	router, token := newAuthRouter(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
