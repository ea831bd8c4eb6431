package driven

import "github.com/custodia-labs/htmlnotepad/internal/core/domain"

// ConfigStore persists the configuration blob at a fixed location.
// Implementations hold no state between calls beyond the location.
type ConfigStore interface {
	// Load reads the stored configuration.
	// It always returns a usable configuration: on any failure the default
	// (empty) configuration is returned together with an error matching
	// domain.ErrConfigLoad, or domain.ErrConfigVersionMismatch when the file
	// was written by a newer schema.
	Load() (*domain.Configuration, error)

	// Save writes cfg, overwriting any existing file.
	// The schema version written is always domain.CurrentSchemaVersion.
	// Errors match domain.ErrConfigSave.
	Save(cfg *domain.Configuration) error

	// Delete removes the stored file. A missing file is not an error.
	Delete() error

	// Path returns the configuration file location.
	Path() string
}
