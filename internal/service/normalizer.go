package service

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/yourorg/transport-cms/internal/storage"
)

// NormalizeRef converts a stored file reference into an absolute public
// URL. Already-absolute references pass through unchanged, so the
// function is idempotent. References carrying an /uploads path keep it;
// bare filenames from legacy rows are placed into the given bucket.
func NormalizeRef(ref string, bucket storage.Bucket, base string) string {
	if ref == "" {
		return ref
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if strings.HasPrefix(ref, "/uploads") {
		return base + ref
	}
	return base + path.Join("/uploads", string(bucket), path.Base(ref))
}

// NormalizeRefPtr normalizes a nullable reference in place
func NormalizeRefPtr(ref *string, bucket storage.Bucket, base string) *string {
	if ref == nil {
		return nil
	}
	normalized := NormalizeRef(*ref, bucket, base)
	return &normalized
}

// BaseURL derives the public base URL for a request. The forwarded
// protocol header wins over the connection state so links stay correct
// behind a TLS-terminating proxy.
func BaseURL(r *http.Request, defaultHost string) string {
	proto := r.Header.Get("X-Forwarded-Proto")
	if proto == "" {
		proto = "http"
		if r.TLS != nil {
			proto = "https"
		}
	}

	host := r.Host
	if host == "" {
		host = defaultHost
	}

	return fmt.Sprintf("%s://%s", proto, host)
}
