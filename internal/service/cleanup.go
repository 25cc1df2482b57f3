package service

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/storage"
)

// Cleaner accepts file references whose backing files should be removed
type Cleaner interface {
	Enqueue(ref string)
}

// FileCleanup deletes superseded upload files in the background.
// Deletion failures are retried with exponential backoff and finally
// logged; they never surface to the request that queued them.
type FileCleanup struct {
	store  storage.Storage
	logger *zap.Logger
	refs   chan string
	wg     sync.WaitGroup
}

// NewFileCleanup creates a new background file cleanup worker
func NewFileCleanup(store storage.Storage, logger *zap.Logger) *FileCleanup {
	return &FileCleanup{
		store:  store,
		logger: logger,
		refs:   make(chan string, 128),
	}
}

// Start launches the worker goroutine. It runs until ctx is cancelled.
func (c *FileCleanup) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				// Drain whatever is left before exiting
				for {
					select {
					case ref := <-c.refs:
						c.delete(ref)
					default:
						return
					}
				}
			case ref := <-c.refs:
				c.delete(ref)
			}
		}
	}()
}

// Enqueue schedules a file reference for deletion. If the queue is full
// the deletion is attempted inline so the reference is never lost.
func (c *FileCleanup) Enqueue(ref string) {
	if ref == "" {
		return
	}
	select {
	case c.refs <- ref:
	default:
		c.logger.Warn("File cleanup queue full, deleting inline", zap.String("ref", ref))
		c.delete(ref)
	}
}

// Wait blocks until the worker goroutine has exited
func (c *FileCleanup) Wait() {
	c.wg.Wait()
}

func (c *FileCleanup) delete(ref string) {
	op := func() error {
		return c.store.Delete(ref)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 50 * time.Millisecond
	policy.MaxElapsedTime = 5 * time.Second

	if err := backoff.Retry(op, backoff.WithMaxRetries(policy, 3)); err != nil {
		c.logger.Warn("Failed to delete old upload file",
			zap.String("ref", ref),
			zap.Error(err))
	}
}
