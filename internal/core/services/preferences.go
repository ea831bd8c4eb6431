package services

import (
	"errors"
	"fmt"
	"io/fs"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driving"
	"github.com/custodia-labs/htmlnotepad/internal/logger"
)

// Ensure PreferencesService implements the interface.
var _ driving.PreferencesService = (*PreferencesService)(nil)

// PreferencesService manages the persisted preferences without an open session.
type PreferencesService struct {
	configStore driven.ConfigStore
}

// NewPreferencesService creates a new preferences service.
func NewPreferencesService(configStore driven.ConfigStore) *PreferencesService {
	return &PreferencesService{configStore: configStore}
}

// Get retrieves the stored preferences.
// A missing file yields defaults with no error.
func (s *PreferencesService) Get() (*domain.Preferences, error) {
	cfg, err := s.configStore.Load()
	prefs := preferencesFromConfig(cfg)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &prefs, err
	}
	return &prefs, nil
}

// Update applies fn to the stored preferences and saves the result.
func (s *PreferencesService) Update(fn func(*domain.Preferences)) error {
	cfg, err := s.configStore.Load()
	if err != nil {
		if errors.Is(err, domain.ErrConfigVersionMismatch) {
			return fmt.Errorf("refusing to overwrite settings: %w", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("replacing unreadable settings file %s: %v", s.configStore.Path(), err)
		}
	}

	prefs := preferencesFromConfig(cfg)
	fn(&prefs)

	if err := validatePreferences(&prefs); err != nil {
		return err
	}
	return s.configStore.Save(configFromPreferences(prefs))
}

// Reset deletes the settings file.
func (s *PreferencesService) Reset() error {
	if err := s.configStore.Delete(); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}

// Recent returns the stored recent files list.
func (s *PreferencesService) Recent() ([]string, error) {
	prefs, err := s.Get()
	return prefs.RecentFiles, err
}

// ClearRecent empties the stored recent files list.
func (s *PreferencesService) ClearRecent() error {
	return s.Update(func(p *domain.Preferences) {
		p.RecentFiles = nil
	})
}

// Path returns the settings file location.
func (s *PreferencesService) Path() string {
	return s.configStore.Path()
}

// preferencesFromConfig reads preferences out of cfg.
// Missing or unparsable fields keep their default.
func preferencesFromConfig(cfg *domain.Configuration) domain.Preferences {
	prefs := domain.DefaultPreferences()
	if cfg == nil {
		return prefs
	}

	if v, ok := cfg.Bool(domain.KeyMouseDisabled); ok {
		prefs.MouseDisabled = v
	}
	if v, ok := cfg.Float(domain.KeyOpacity); ok {
		prefs.Opacity = domain.ClampOpacity(v)
	}
	if v, ok := cfg.Bool(domain.KeyOldUI); ok {
		prefs.OldUI = v
	}

	lastFile, _ := cfg.String(domain.KeyLastFile)
	if v, ok := cfg.Bool(domain.KeyReloadLast); ok {
		prefs.ReloadLastFile = v
	} else {
		// Older files signal the option only by writing last_file
		prefs.ReloadLastFile = lastFile != ""
	}
	if prefs.ReloadLastFile {
		prefs.LastFile = lastFile
	}

	if v, ok := cfg.String(domain.KeyRecentFiles); ok {
		prefs.RecentFiles = domain.ParseRecentFiles(v).Entries()
	}

	return prefs
}

// configFromPreferences builds the configuration to persist.
// last_file is written only while the reload option is on.
func configFromPreferences(prefs domain.Preferences) *domain.Configuration {
	cfg := domain.NewConfiguration()
	cfg.Set(domain.KeyMouseDisabled, prefs.MouseDisabled)
	cfg.Set(domain.KeyOpacity, domain.ClampOpacity(prefs.Opacity))
	cfg.Set(domain.KeyOldUI, prefs.OldUI)
	cfg.Set(domain.KeyReloadLast, prefs.ReloadLastFile)
	if prefs.ReloadLastFile && prefs.LastFile != "" {
		cfg.Set(domain.KeyLastFile, prefs.LastFile)
	}
	cfg.Set(domain.KeyRecentFiles, domain.NewRecentFiles(prefs.RecentFiles...).Serialize())
	return cfg
}

// validatePreferences checks values entered through the CLI.
func validatePreferences(prefs *domain.Preferences) error {
	err := validation.ValidateStruct(prefs,
		validation.Field(&prefs.Opacity,
			validation.Required,
			validation.Min(domain.MinOpacity),
			validation.Max(domain.MaxOpacity),
		),
		validation.Field(&prefs.RecentFiles, validation.Length(0, domain.MaxRecentFiles)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
