package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

var testExtensions = []string{".jpeg", ".jpg", ".png", ".gif", ".webp", ".pdf", ".mp4", ".mov"}

// fileHeader builds a multipart.FileHeader with a real content type
// header, the way a browser upload arrives
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	headers := form.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), 1<<20, testExtensions, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestLocalStorageSave(t *testing.T) {
	s := newTestStorage(t)

	file := fileHeader(t, "portrait.PNG", "image/png", []byte("fake png bytes"))
	ref, err := s.Save(context.Background(), "image", false, file)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/uploads/images/image-\d+-[0-9a-f]{12}\.png$`), ref)

	onDisk := filepath.Join(s.basePath, strings.TrimPrefix(ref, "/uploads/"))
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), content)
}

func TestLocalStorageSaveBuckets(t *testing.T) {
	s := newTestStorage(t)

	tests := []struct {
		field     string
		newsRoute bool
		prefix    string
	}{
		{"image", false, "/uploads/images/"},
		{"image", true, "/uploads/media/"},
		{"attachment", false, "/uploads/media/"},
	}

	for _, tt := range tests {
		file := fileHeader(t, "upload.jpg", "image/jpeg", []byte("data"))
		ref, err := s.Save(context.Background(), tt.field, tt.newsRoute, file)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ref, tt.prefix), "field %s newsRoute %v got %s", tt.field, tt.newsRoute, ref)
	}
}

func TestLocalStorageSaveRejectsBadExtension(t *testing.T) {
	s := newTestStorage(t)

	file := fileHeader(t, "script.exe", "application/octet-stream", []byte("MZ"))
	_, err := s.Save(context.Background(), "image", false, file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestLocalStorageSaveRejectsBadContentType(t *testing.T) {
	s := newTestStorage(t)

	// Extension is allowed but the declared type is not
	file := fileHeader(t, "payload.png", "application/octet-stream", []byte("data"))
	_, err := s.Save(context.Background(), "image", false, file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestLocalStorageSaveRejectsOversizedFile(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), 16, testExtensions, zap.NewNop())
	require.NoError(t, err)

	file := fileHeader(t, "big.jpg", "image/jpeg", bytes.Repeat([]byte("x"), 64))
	_, err = s.Save(context.Background(), "image", false, file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestLocalStorageDelete(t *testing.T) {
	s := newTestStorage(t)

	file := fileHeader(t, "doc.pdf", "application/pdf", []byte("pdf"))
	ref, err := s.Save(context.Background(), "attachment", false, file)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ref))

	onDisk := filepath.Join(s.basePath, strings.TrimPrefix(ref, "/uploads/"))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageDeleteRejectsTraversal(t *testing.T) {
	s := newTestStorage(t)

	outside := filepath.Join(filepath.Dir(s.basePath), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0644))

	err := s.Delete("/uploads/../victim.txt")
	require.Error(t, err)

	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

func TestLocalStorageDeleteEmptyRef(t *testing.T) {
	s := newTestStorage(t)
	assert.Error(t, s.Delete(""))
}
