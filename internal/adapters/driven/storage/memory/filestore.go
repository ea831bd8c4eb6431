package memory

import (
	"io/fs"
	"sync"

	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore is an in-memory implementation of driven.FileStore for testing.
type FileStore struct {
	mu        sync.RWMutex
	files     map[string]string
	readErrs  map[string]error
	writeErrs map[string]error
	writes    int
}

// NewFileStore creates an empty in-memory file store.
func NewFileStore() *FileStore {
	return &FileStore{
		files:     make(map[string]string),
		readErrs:  make(map[string]error),
		writeErrs: make(map[string]error),
	}
}

// Put stores content at path without counting a write.
func (s *FileStore) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = content
}

// Get returns the content at path.
func (s *FileStore) Get(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[path]
	return content, ok
}

// Writes returns how many writes succeeded.
func (s *FileStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// FailRead makes reads of path fail with err.
func (s *FileStore) FailRead(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErrs[path] = err
}

// FailWrite makes writes to path fail with err.
func (s *FileStore) FailWrite(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErrs[path] = err
}

// Read returns the content at path.
func (s *FileStore) Read(path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err, ok := s.readErrs[path]; ok {
		return "", domain.NewFileReadError(path, err)
	}
	content, ok := s.files[path]
	if !ok {
		return "", domain.NewFileReadError(path, fs.ErrNotExist)
	}
	return content, nil
}

// Write stores content at path.
func (s *FileStore) Write(path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.writeErrs[path]; ok {
		return domain.NewFileWriteError(path, err)
	}
	s.files[path] = content
	s.writes++
	return nil
}

// Delete removes path.
func (s *FileStore) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}
