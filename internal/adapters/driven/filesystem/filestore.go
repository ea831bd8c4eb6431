package filesystem

import (
	"errors"
	"os"

	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// documentPerm is the mode for newly created documents.
const documentPerm = 0644

// FileStore reads and writes documents on the local filesystem.
// Content is stored byte-for-byte; no line ending conversion happens.
type FileStore struct{}

// NewFileStore creates a filesystem-backed document store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Read returns the content of path.
func (s *FileStore) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewFileReadError(path, err)
	}
	return string(data), nil
}

// Write replaces the content of path, creating it if needed.
func (s *FileStore) Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), documentPerm); err != nil {
		return domain.NewFileWriteError(path, err)
	}
	return nil
}

// Delete removes path. A missing file is not an error.
func (s *FileStore) Delete(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.NewFileWriteError(path, err)
	}
	return nil
}
