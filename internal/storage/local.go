package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// urlPrefix is the public path prefix recorded on entity rows
const urlPrefix = "/uploads"

// LocalStorage implements the Storage interface for the local filesystem
type LocalStorage struct {
	basePath    string
	maxFileSize int64
	allowedExts map[string]bool
	logger      *zap.Logger
}

// NewLocalStorage creates a new LocalStorage rooted at basePath
func NewLocalStorage(basePath string, maxFileSize int64, allowedExts []string, logger *zap.Logger) (*LocalStorage, error) {
	exts := make(map[string]bool, len(allowedExts))
	for _, e := range allowedExts {
		exts[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	// Ensure the bucket directories exist up front
	for _, b := range []Bucket{BucketRoot, BucketImages, BucketMedia} {
		if err := os.MkdirAll(filepath.Join(basePath, string(b)), 0755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}

	return &LocalStorage{
		basePath:    basePath,
		maxFileSize: maxFileSize,
		allowedExts: exts,
		logger:      logger,
	}, nil
}

// Save validates and stores an uploaded file
func (s *LocalStorage) Save(ctx context.Context, field string, newsRoute bool, file *multipart.FileHeader) (string, error) {
	if err := s.validateFile(file); err != nil {
		return "", err
	}

	bucket := ClassifyField(field, newsRoute)
	dirPath := filepath.Join(s.basePath, string(bucket))
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	// Collision-resistant name without any coordination
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), suffix, ext)
	filePath := filepath.Join(dirPath, filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to copy file content: %w", err)
	}

	s.logger.Debug("Stored uploaded file",
		zap.String("field", field),
		zap.String("bucket", string(bucket)),
		zap.String("filename", filename))

	return path.Join(urlPrefix, string(bucket), filename), nil
}

// Delete removes the file a stored reference points to
func (s *LocalStorage) Delete(ref string) error {
	filePath, err := s.resolveRef(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// resolveRef maps a "/uploads/..." reference back to a path under the
// base directory, rejecting anything that would escape it
func (s *LocalStorage) resolveRef(ref string) (string, error) {
	rel := strings.TrimPrefix(ref, urlPrefix)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return "", fmt.Errorf("empty file reference")
	}

	filePath := filepath.Join(s.basePath, filepath.FromSlash(rel))

	base, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", err
	}
	if abs != base && !strings.HasPrefix(abs, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("file reference escapes storage root: %s", ref)
	}
	if abs == base {
		return "", fmt.Errorf("invalid file reference: %s", ref)
	}

	return filePath, nil
}

// validateFile checks size, extension and declared content type against
// the allow-list. Both extension and content type must match.
func (s *LocalStorage) validateFile(file *multipart.FileHeader) error {
	if file.Size > s.maxFileSize {
		return fmt.Errorf("%w: file size %d exceeds maximum of %d bytes", model.ErrValidation, file.Size, s.maxFileSize)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if !s.allowedExts[ext] {
		return fmt.Errorf("%w: only images, PDFs, and videos are allowed", model.ErrValidation)
	}

	contentType := strings.ToLower(file.Header.Get("Content-Type"))
	typeOK := false
	for allowed := range s.allowedExts {
		if strings.Contains(contentType, allowed) {
			typeOK = true
			break
		}
	}
	if !typeOK {
		return fmt.Errorf("%w: only images, PDFs, and videos are allowed", model.ErrValidation)
	}

	return nil
}
