package memory

import (
	"fmt"
	"io/fs"
	"maps"
	"sync"

	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore for testing.
// It applies the same schema version gate as the file store.
type ConfigStore struct {
	mu        sync.RWMutex
	stored    *domain.Configuration
	saves     int
	loadErr   error
	saveErr   error
	deleteErr error
}

// NewConfigStore creates a new in-memory config store with nothing stored.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{}
}

// Put stores cfg as-is, including its schema version.
// Used to simulate files written by other program versions.
func (s *ConfigStore) Put(cfg *domain.Configuration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stored = cloneConfiguration(cfg)
}

// Stored returns a copy of the stored configuration, or nil.
func (s *ConfigStore) Stored() *domain.Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stored == nil {
		return nil
	}
	return cloneConfiguration(s.stored)
}

// Saves returns how many times Save succeeded.
func (s *ConfigStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// FailLoad makes Load fail with err wrapped as a load error.
func (s *ConfigStore) FailLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// FailSave makes Save fail with err wrapped as a save error.
func (s *ConfigStore) FailSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// FailDelete makes Delete fail with err.
func (s *ConfigStore) FailDelete(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteErr = err
}

// Load returns the stored configuration or defaults with an error.
func (s *ConfigStore) Load() (*domain.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return domain.NewConfiguration(), fmt.Errorf("%w: %w", domain.ErrConfigLoad, s.loadErr)
	}
	if s.stored == nil {
		return domain.NewConfiguration(), fmt.Errorf("%w: %w", domain.ErrConfigLoad, fs.ErrNotExist)
	}
	if !s.stored.IsCompatible() {
		return domain.NewConfiguration(), &domain.VersionMismatchError{
			Found:   s.stored.SchemaVersion,
			Current: domain.CurrentSchemaVersion,
		}
	}
	return cloneConfiguration(s.stored), nil
}

// Save stores a copy of cfg at the current schema version.
func (s *ConfigStore) Save(cfg *domain.Configuration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigSave, s.saveErr)
	}
	s.stored = cloneConfiguration(cfg)
	s.stored.SchemaVersion = domain.CurrentSchemaVersion
	s.saves++
	return nil
}

// Delete drops the stored configuration.
func (s *ConfigStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.stored = nil
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}

func cloneConfiguration(cfg *domain.Configuration) *domain.Configuration {
	out := &domain.Configuration{
		SchemaVersion: cfg.SchemaVersion,
		Fields:        make(map[string]any, len(cfg.Fields)),
	}
	maps.Copy(out.Fields, cfg.Fields)
	return out
}
