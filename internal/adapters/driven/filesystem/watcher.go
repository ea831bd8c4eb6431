package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
	"github.com/custodia-labs/htmlnotepad/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.DocumentWatcher = (*Watcher)(nil)

// DefaultDebounce groups the burst of events a single save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports writes and removals of one file.
//
// It watches the file's directory rather than the file itself, so editors
// that save by renaming a temporary file over the original are still seen.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu     sync.Mutex
	dir    string
	target string
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher creates a watcher that is not yet watching anything.
func NewWatcher(opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch retargets the watcher at path. An empty path stops watching.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var dir string
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		path = abs
		dir = filepath.Dir(abs)
	}

	if dir != w.dir {
		if w.dir != "" {
			if err := w.fsw.Remove(w.dir); err != nil {
				logger.Debug("watcher: remove %s: %v", w.dir, err)
			}
		}
		if dir != "" {
			if err := w.fsw.Add(dir); err != nil {
				w.dir, w.target = "", ""
				return fmt.Errorf("watch %s: %w", dir, err)
			}
		}
		w.dir = dir
	}

	w.target = path
	logger.Debug("watcher: target %q", path)
	return nil
}

// Run delivers debounced changes to fn until ctx is cancelled or the
// watcher is closed. fn runs on the Run goroutine.
func (w *Watcher) Run(ctx context.Context, fn func(driven.DiskChange)) error {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending *driven.DiskChange
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-timerC:
			timerC = nil
			if pending != nil {
				fn(*pending)
				pending = nil
			}

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			change, matched := w.classify(ev)
			if !matched {
				continue
			}
			// Last event in the burst wins: a remove followed by a create is a write
			pending = &change
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Target returns the watched file, or "".
func (w *Watcher) Target() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.target
}

// classify maps an fsnotify event on the target to a change.
func (w *Watcher) classify(ev fsnotify.Event) (driven.DiskChange, bool) {
	w.mu.Lock()
	target := w.target
	w.mu.Unlock()

	if target == "" || filepath.Clean(ev.Name) != target {
		return driven.DiskChange{}, false
	}

	switch {
	case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
		return driven.DiskChange{Path: target, Kind: driven.DiskChangeWritten}, true
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return driven.DiskChange{Path: target, Kind: driven.DiskChangeRemoved}, true
	default:
		return driven.DiskChange{}, false
	}
}
