package file

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Settings file names. The Windows file is hidden by attribute instead of
// by a leading dot.
const (
	unixFileName    = ".htmlnotepad_settings.toml"
	windowsFileName = "htmlnotepad_settings.toml"
)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Only the location is kept between calls.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a TOML config store at path.
// If path is empty, defaults to DefaultPath().
func NewConfigStore(path string) (*ConfigStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &ConfigStore{filePath: path}, nil
}

// DefaultPath returns the per-user settings file location for this OS.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, fileNameFor(runtime.GOOS)), nil
}

func fileNameFor(goos string) string {
	if goos == "windows" {
		return windowsFileName
	}
	return unixFileName
}

// Load reads the configuration file.
// On failure the default configuration is returned with the error.
func (s *ConfigStore) Load() (*domain.Configuration, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return domain.NewConfiguration(), fmt.Errorf("%w: %w", domain.ErrConfigLoad, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return domain.NewConfiguration(), fmt.Errorf("%w: parse %s: %w", domain.ErrConfigLoad, s.filePath, err)
	}

	rawVersion, ok := raw[domain.KeyConfigVersion]
	if !ok {
		return domain.NewConfiguration(), fmt.Errorf("%w: %s has no %s", domain.ErrConfigLoad, s.filePath, domain.KeyConfigVersion)
	}
	version, ok := domain.ParseNumber(rawVersion)
	if !ok || math.IsNaN(version) || math.IsInf(version, 0) {
		return domain.NewConfiguration(), fmt.Errorf("%w: unparsable %s %v", domain.ErrConfigLoad, domain.KeyConfigVersion, rawVersion)
	}

	if version > domain.CurrentSchemaVersion {
		return domain.NewConfiguration(), &domain.VersionMismatchError{
			Found:   int(math.Ceil(version)),
			Current: domain.CurrentSchemaVersion,
		}
	}

	cfg := &domain.Configuration{
		SchemaVersion: int(version),
		Fields:        make(map[string]any, len(raw)),
	}
	for k, v := range raw {
		if k == domain.KeyConfigVersion {
			continue
		}
		cfg.Fields[k] = v
	}
	return cfg, nil
}

// Save writes cfg stamped with the running schema version,
// replacing any existing file.
func (s *ConfigStore) Save(cfg *domain.Configuration) error {
	out := make(map[string]any, len(cfg.Fields)+1)
	for k, v := range cfg.Fields {
		out[k] = v
	}
	out[domain.KeyConfigVersion] = domain.CurrentSchemaVersion

	data, err := toml.Marshal(out)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrConfigSave, err)
	}

	if dir := filepath.Dir(s.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrConfigSave, err)
		}
	}

	if err := clearHidden(s.filePath); err != nil {
		return err
	}

	// Write with restricted permissions
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigSave, err)
	}

	return markHidden(s.filePath)
}

// Delete removes the configuration file. A missing file is not an error.
func (s *ConfigStore) Delete() error {
	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
