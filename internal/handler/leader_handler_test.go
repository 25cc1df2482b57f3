package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/service"
	"github.com/yourorg/transport-cms/internal/storage"
)

// memLeaderStore keeps leaders in memory for handler tests
type memLeaderStore struct {
	leaders map[int]model.Leader
	nextID  int
}

func newMemLeaderStore() *memLeaderStore {
	return &memLeaderStore{leaders: map[int]model.Leader{}, nextID: 1}
}

func (m *memLeaderStore) List(ctx context.Context, activeOnly bool) ([]model.Leader, error) {
	out := make([]model.Leader, 0, len(m.leaders))
	for _, l := range m.leaders {
		if activeOnly && !l.IsActive {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *memLeaderStore) GetByID(ctx context.Context, id int) (*model.Leader, error) {
	l, ok := m.leaders[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &l, nil
}

func (m *memLeaderStore) Create(ctx context.Context, l *model.Leader) (int, error) {
	id := m.nextID
	m.nextID++
	l.ID = id
	m.leaders[id] = *l
	return id, nil
}

func (m *memLeaderStore) Update(ctx context.Context, l *model.Leader, withImage bool) error {
	if _, ok := m.leaders[l.ID]; !ok {
		return model.ErrNotFound
	}
	copied := *l
	if !withImage {
		prev := m.leaders[l.ID]
		copied.ImageURL = prev.ImageURL
	}
	m.leaders[l.ID] = copied
	return nil
}

func (m *memLeaderStore) Delete(ctx context.Context, id int) error {
	if _, ok := m.leaders[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.leaders, id)
	return nil
}

// inlineCleaner deletes synchronously so tests never race
type inlineCleaner struct {
	store storage.Storage
	refs  []string
}

func (c *inlineCleaner) Enqueue(ref string) {
	c.refs = append(c.refs, ref)
	c.store.Delete(ref)
}

func newLeaderRouter(t *testing.T) (*gin.Engine, *memLeaderStore, *inlineCleaner) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalStorage(t.TempDir(), 1<<20,
		[]string{".jpeg", ".jpg", ".png", ".gif", ".webp", ".pdf", ".mp4", ".mov"}, zap.NewNop())
	require.NoError(t, err)

	repo := newMemLeaderStore()
	cleaner := &inlineCleaner{store: store}
	svc := service.NewLeaderService(repo, store, cleaner, nil, zap.NewNop())
	h := NewLeaderHandler(svc, zap.NewNop())

	router := gin.New()
	router.GET("/admin/leaders", h.List)
	router.POST("/admin/leaders/add", h.Create)
	router.GET("/admin/leaders/edit/:id", h.Get)
	router.POST("/admin/leaders/update/:id", h.Update)
	router.DELETE("/admin/leaders/delete/:id", h.Delete)
	return router, repo, cleaner
}

// multipartBody builds a multipart form with text fields and one typed
// file part
func multipartBody(t *testing.T, fields map[string]string, fileField, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fileField, filename))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func leaderFields() map[string]string {
	return map[string]string{
		"name":     "Ato Gediyon Lemma",
		"title_en": "Bureau Head",
		"title_am": "የቢሮ ኃላፊ",
	}
}

func TestLeaderHandlerCreateWithImage(t *testing.T) {
	router, repo, _ := newLeaderRouter(t)

	body, contentType := multipartBody(t, leaderFields(), "image", "portrait.png", "image/png", []byte("png bytes"))
	req := httptest.NewRequest("POST", "/admin/leaders/add", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Leader  model.Leader `json:"leader"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Leader added successfully", resp.Message)
	require.NotNil(t, resp.Leader.ImageURL)
	assert.True(t, strings.HasPrefix(*resp.Leader.ImageURL, "/uploads/images/"), *resp.Leader.ImageURL)
	assert.Len(t, repo.leaders, 1)
}

func TestLeaderHandlerCreateWithoutImage(t *testing.T) {
	router, repo, _ := newLeaderRouter(t)

	form := url.Values{}
	for k, v := range leaderFields() {
		form.Set(k, v)
	}
	req := httptest.NewRequest("POST", "/admin/leaders/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.leaders, 1)
	for _, l := range repo.leaders {
		assert.Nil(t, l.ImageURL)
	}
}

func TestLeaderHandlerCreateMissingRequiredField(t *testing.T) {
	router, repo, _ := newLeaderRouter(t)

	fields := leaderFields()
	delete(fields, "name")
	body, contentType := multipartBody(t, fields, "", "", "", nil)
	req := httptest.NewRequest("POST", "/admin/leaders/add", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.leaders)
}

func TestLeaderHandlerCreateRejectsBadUpload(t *testing.T) {
	router, repo, _ := newLeaderRouter(t)

	body, contentType := multipartBody(t, leaderFields(), "image", "malware.exe", "application/octet-stream", []byte("MZ"))
	req := httptest.NewRequest("POST", "/admin/leaders/add", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.leaders)
}

func TestLeaderHandlerUpdateReplacesImage(t *testing.T) {
	router, repo, cleaner := newLeaderRouter(t)

	body, contentType := multipartBody(t, leaderFields(), "image", "old.png", "image/png", []byte("old"))
	req := httptest.NewRequest("POST", "/admin/leaders/add", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	oldRef := *repo.leaders[1].ImageURL

	body, contentType = multipartBody(t, leaderFields(), "image", "new.png", "image/png", []byte("new"))
	req = httptest.NewRequest("POST", "/admin/leaders/update/1", body)
	req.Header.Set("Content-Type", contentType)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotEqual(t, oldRef, *repo.leaders[1].ImageURL)
	assert.Equal(t, []string{oldRef}, cleaner.refs)
}

func TestLeaderHandlerGetNotFound(t *testing.T) {
	router, _, _ := newLeaderRouter(t)

	req := httptest.NewRequest("GET", "/admin/leaders/edit/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaderHandlerBadID(t *testing.T) {
	router, _, _ := newLeaderRouter(t)

	req := httptest.NewRequest("GET", "/admin/leaders/edit/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaderHandlerDelete(t *testing.T) {
	router, repo, cleaner := newLeaderRouter(t)

	body, contentType := multipartBody(t, leaderFields(), "image", "portrait.png", "image/png", []byte("png"))
	req := httptest.NewRequest("POST", "/admin/leaders/add", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	ref := *repo.leaders[1].ImageURL

	req = httptest.NewRequest("DELETE", "/admin/leaders/delete/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.leaders)
	assert.Equal(t, []string{ref}, cleaner.refs)
}
