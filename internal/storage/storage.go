package storage

import (
	"context"
	"mime/multipart"
)

// Storage defines the interface for upload storage backends
type Storage interface {
	// Save validates and stores an uploaded file, returning the relative
	// reference ("/uploads/<bucket>/<name>") recorded on the owning row
	Save(ctx context.Context, field string, newsRoute bool, file *multipart.FileHeader) (string, error)

	// Delete resolves a stored reference back to a file and removes it
	Delete(ref string) error
}
