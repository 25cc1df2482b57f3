package service

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// flakyStore fails the first N deletes for each ref, then succeeds
type flakyStore struct {
	mu       sync.Mutex
	failures int
	attempts map[string]int
	deleted  []string
}

func newFlakyStore(failures int) *flakyStore {
	return &flakyStore{failures: failures, attempts: make(map[string]int)}
}

func (f *flakyStore) Save(ctx context.Context, field string, newsRoute bool, file *multipart.FileHeader) (string, error) {
	return "", errors.New("not implemented")
}

func (f *flakyStore) Delete(ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts[ref]++
	if f.attempts[ref] <= f.failures {
		return errors.New("transient failure")
	}
	f.deleted = append(f.deleted, ref)
	return nil
}

func (f *flakyStore) deletedRefs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func TestFileCleanupDeletes(t *testing.T) {
	store := newFlakyStore(0)
	cleanup := NewFileCleanup(store, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cleanup.Start(ctx)

	cleanup.Enqueue("/uploads/images/old.png")
	cleanup.Enqueue("/uploads/media/old.pdf")

	require.Eventually(t, func() bool {
		return len(store.deletedRefs()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	cleanup.Wait()

	assert.ElementsMatch(t, []string{"/uploads/images/old.png", "/uploads/media/old.pdf"}, store.deletedRefs())
}

func TestFileCleanupRetriesTransientFailures(t *testing.T) {
	store := newFlakyStore(2)
	cleanup := NewFileCleanup(store, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cleanup.Start(ctx)

	cleanup.Enqueue("/uploads/images/flaky.png")

	require.Eventually(t, func() bool {
		return len(store.deletedRefs()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	cleanup.Wait()
}

func TestFileCleanupDrainsOnShutdown(t *testing.T) {
	store := newFlakyStore(0)
	cleanup := NewFileCleanup(store, zap.NewNop())

	// Queue before the worker starts, then shut down immediately
	cleanup.Enqueue("/uploads/images/a.png")
	cleanup.Enqueue("/uploads/images/b.png")

	ctx, cancel := context.WithCancel(context.Background())
	cleanup.Start(ctx)
	cancel()
	cleanup.Wait()

	assert.Len(t, store.deletedRefs(), 2)
}

func TestFileCleanupIgnoresEmptyRef(t *testing.T) {
	store := newFlakyStore(0)
	cleanup := NewFileCleanup(store, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cleanup.Start(ctx)

	cleanup.Enqueue("")

	cancel()
	cleanup.Wait()

	assert.Empty(t, store.deletedRefs())
}
