package service

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourorg/transport-cms/internal/storage"
)

func TestNormalizeRef(t *testing.T) {
	base := "https://transport.example.gov.et"

	tests := []struct {
		name   string
		ref    string
		bucket storage.Bucket
		want   string
	}{
		{"empty stays empty", "", storage.BucketImages, ""},
		{"absolute http passes through", "http://cdn.example.com/a.png", storage.BucketImages, "http://cdn.example.com/a.png"},
		{"absolute https passes through", "https://cdn.example.com/a.png", storage.BucketMedia, "https://cdn.example.com/a.png"},
		{"uploads path gets base prefixed", "/uploads/images/image-1-abc.png", storage.BucketImages, base + "/uploads/images/image-1-abc.png"},
		{"bare filename placed in images", "portrait.png", storage.BucketImages, base + "/uploads/images/portrait.png"},
		{"bare filename placed in media", "report.pdf", storage.BucketMedia, base + "/uploads/media/report.pdf"},
		{"bare filename in root bucket", "legacy.jpg", storage.BucketRoot, base + "/uploads/legacy.jpg"},
		{"relative path reduced to basename", "old/dir/photo.jpg", storage.BucketImages, base + "/uploads/images/photo.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRef(tt.ref, tt.bucket, base))
		})
	}
}

func TestNormalizeRefIdempotent(t *testing.T) {
	base := "http://localhost:5000"
	once := NormalizeRef("/uploads/media/news.mp4", storage.BucketMedia, base)
	twice := NormalizeRef(once, storage.BucketMedia, base)
	assert.Equal(t, once, twice)
}

func TestNormalizeRefPtr(t *testing.T) {
	base := "http://localhost:5000"

	assert.Nil(t, NormalizeRefPtr(nil, storage.BucketImages, base))

	ref := "photo.png"
	got := NormalizeRefPtr(&ref, storage.BucketImages, base)
	assert.Equal(t, base+"/uploads/images/photo.png", *got)
	assert.Equal(t, "photo.png", ref)
}

func TestBaseURL(t *testing.T) {
	t.Run("plain request", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://transport.example.gov.et/api/news", nil)
		assert.Equal(t, "http://transport.example.gov.et", BaseURL(r, "localhost:5000"))
	})

	t.Run("forwarded proto wins", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://transport.example.gov.et/api/news", nil)
		r.Header.Set("X-Forwarded-Proto", "https")
		assert.Equal(t, "https://transport.example.gov.et", BaseURL(r, "localhost:5000"))
	})

	t.Run("tls connection", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://transport.example.gov.et/api/news", nil)
		r.TLS = &tls.ConnectionState{}
		assert.Equal(t, "https://transport.example.gov.et", BaseURL(r, "localhost:5000"))
	})

	t.Run("missing host falls back", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/news", nil)
		r.Host = ""
		assert.Equal(t, "http://localhost:5000", BaseURL(r, "localhost:5000"))
	})
}
