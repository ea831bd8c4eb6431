package driven

// FileStore reads and writes document files.
type FileStore interface {
	// Read returns the full content of path.
	// Errors match domain.ErrFileRead.
	Read(path string) (string, error)

	// Write replaces the content of path.
	// Errors match domain.ErrFileWrite.
	Write(path, content string) error

	// Delete removes path. A missing file is not an error.
	Delete(path string) error
}
