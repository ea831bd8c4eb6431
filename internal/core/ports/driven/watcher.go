package driven

import "context"

// DiskChangeKind describes what happened to a watched file.
type DiskChangeKind string

// Disk change kinds.
const (
	DiskChangeWritten DiskChangeKind = "written"
	DiskChangeRemoved DiskChangeKind = "removed"
)

// DiskChange reports a modification made to the watched file.
type DiskChange struct {
	Path string
	Kind DiskChangeKind
}

// DocumentWatcher reports changes to a single file made outside the session.
type DocumentWatcher interface {
	// Watch retargets the watcher at path. An empty path stops watching.
	Watch(path string) error

	// Run delivers changes to fn until ctx is cancelled.
	Run(ctx context.Context, fn func(DiskChange)) error

	// Close releases the watcher.
	Close() error
}
