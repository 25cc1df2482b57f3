package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/service"
	"github.com/yourorg/transport-cms/internal/storage"
)

func newPublicRouter(t *testing.T, repo *memLeaderStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalStorage(t.TempDir(), 1<<20,
		[]string{".jpeg", ".jpg", ".png", ".pdf"}, zap.NewNop())
	require.NoError(t, err)

	leaders := service.NewLeaderService(repo, store, &inlineCleaner{store: store}, nil, zap.NewNop())
	h := NewPublicHandler(leaders, nil, nil, nil, nil, nil, nil, "localhost:5000", zap.NewNop())

	router := gin.New()
	router.GET("/api/leaders", h.GetLeaders)
	router.GET("/api/config", h.GetConfig)
	return router
}

func seedLeader(repo *memLeaderStore, name string, active bool, imageRef *string) {
	repo.leaders[repo.nextID] = model.Leader{
		ID:           repo.nextID,
		Name:         name,
		TitleEN:      "Bureau Head",
		TitleAM:      "የቢሮ ኃላፊ",
		ImageURL:     imageRef,
		DisplayOrder: 1,
		IsActive:     active,
	}
	repo.nextID++
}

func TestPublicLeadersAbsoluteURLs(t *testing.T) {
	repo := newMemLeaderStore()
	stored := "/uploads/images/image-1-abc.png"
	legacy := "old-portrait.png"
	seedLeader(repo, "Stored Ref", true, &stored)
	seedLeader(repo, "Legacy Ref", true, &legacy)
	seedLeader(repo, "No Image", true, nil)
	seedLeader(repo, "Inactive", false, &stored)

	router := newPublicRouter(t, repo)

	req := httptest.NewRequest("GET", "http://transport.example.gov.et/api/leaders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var leaders []model.Leader
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leaders))
	require.Len(t, leaders, 3)

	urls := map[string]*string{}
	for _, l := range leaders {
		urls[l.Name] = l.ImageURL
	}

	require.NotNil(t, urls["Stored Ref"])
	assert.Equal(t, "http://transport.example.gov.et/uploads/images/image-1-abc.png", *urls["Stored Ref"])
	require.NotNil(t, urls["Legacy Ref"])
	assert.Equal(t, "http://transport.example.gov.et/uploads/images/old-portrait.png", *urls["Legacy Ref"])
	assert.Nil(t, urls["No Image"])
}

func TestPublicLeadersForwardedProto(t *testing.T) {
	repo := newMemLeaderStore()
	stored := "/uploads/images/image-1-abc.png"
	seedLeader(repo, "Stored Ref", true, &stored)

	router := newPublicRouter(t, repo)

	req := httptest.NewRequest("GET", "http://transport.example.gov.et/api/leaders", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://transport.example.gov.et/uploads/images/image-1-abc.png")
}

func TestPublicConfig(t *testing.T) {
	router := newPublicRouter(t, newMemLeaderStore())

	req := httptest.NewRequest("GET", "http://transport.example.gov.et/api/config", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"apiBaseUrl": "http://transport.example.gov.et/api"}`, w.Body.String())
}
