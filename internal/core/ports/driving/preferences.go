package driving

import "github.com/custodia-labs/htmlnotepad/internal/core/domain"

// PreferencesService edits the persisted preferences outside an editing session.
type PreferencesService interface {
	// Get returns the stored preferences, or defaults if none are usable.
	// A version mismatch is returned alongside the defaults.
	Get() (*domain.Preferences, error)

	// Update loads the preferences, applies fn, validates and saves them.
	// It refuses to overwrite a file written by a newer schema.
	Update(fn func(*domain.Preferences)) error

	// Reset deletes the settings file.
	Reset() error

	// Recent returns the stored recent files list.
	Recent() ([]string, error)

	// ClearRecent empties the stored recent files list.
	ClearRecent() error

	// Path returns the settings file location.
	Path() string
}
