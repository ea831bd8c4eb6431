package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
)

type changeRecorder struct {
	mu      sync.Mutex
	changes []driven.DiskChange
}

func (r *changeRecorder) record(c driven.DiskChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *changeRecorder) last() (driven.DiskChange, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.changes) == 0 {
		return driven.DiskChange{}, false
	}
	return r.changes[len(r.changes)-1], true
}

func (r *changeRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.changes)
}

func startWatcher(t *testing.T, target string) (*Watcher, *changeRecorder) {
	t.Helper()
	w, err := NewWatcher(WithDebounce(20 * time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Watch(target))

	ctx, cancel := context.WithCancel(context.Background())
	rec := &changeRecorder{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, rec.record)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
		_ = w.Close()
	})
	return w, rec
}

func TestWatcher_ReportsWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.html")
	require.NoError(t, os.WriteFile(target, []byte("v1"), 0644))

	_, rec := startWatcher(t, target)
	require.NoError(t, os.WriteFile(target, []byte("v2"), 0644))

	require.Eventually(t, func() bool {
		c, ok := rec.last()
		return ok && c.Kind == driven.DiskChangeWritten && c.Path == target
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_ReportsRemove(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.html")
	require.NoError(t, os.WriteFile(target, []byte("v1"), 0644))

	_, rec := startWatcher(t, target)
	require.NoError(t, os.Remove(target))

	require.Eventually(t, func() bool {
		c, ok := rec.last()
		return ok && c.Kind == driven.DiskChangeRemoved
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.html")
	require.NoError(t, os.WriteFile(target, []byte("v1"), 0644))

	_, rec := startWatcher(t, target)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"), []byte("x"), 0644))

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestWatcher_Retarget(t *testing.T) {
	first := filepath.Join(t.TempDir(), "a.html")
	secondDir := t.TempDir()
	second := filepath.Join(secondDir, "b.html")
	require.NoError(t, os.WriteFile(first, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("b"), 0644))

	w, rec := startWatcher(t, first)
	require.NoError(t, w.Watch(second))
	assert.Equal(t, second, w.Target())

	require.NoError(t, os.WriteFile(second, []byte("b2"), 0644))

	require.Eventually(t, func() bool {
		c, ok := rec.last()
		return ok && c.Path == second
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_EmptyPathStops(t *testing.T) {
	target := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(target, []byte("v1"), 0644))

	w, rec := startWatcher(t, target)
	require.NoError(t, w.Watch(""))
	assert.Equal(t, "", w.Target())

	require.NoError(t, os.WriteFile(target, []byte("v2"), 0644))

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestWatcher_Watch_MissingDirectory(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	err = w.Watch(filepath.Join(t.TempDir(), "missing", "doc.html"))

	assert.Error(t, err)
	assert.Equal(t, "", w.Target())
}
