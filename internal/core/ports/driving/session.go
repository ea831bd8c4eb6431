package driving

import "github.com/custodia-labs/htmlnotepad/internal/core/domain"

// DocumentSession is the single source of truth for which document is open
// and whether it is safe to discard.
//
// Destructive operations consult the Confirmer only when the document is
// dirty. A declined confirmation leaves every field of the session as it was.
type DocumentSession interface {
	// Restore loads the persisted configuration, applies preferences and the
	// recent files list, and reopens the last file if requested.
	// Errors are recoverable; the session is usable afterwards.
	Restore() error

	// MarkModified flags the document as having unsaved changes.
	MarkModified()

	// SetContent replaces the editor text, marking the document modified
	// if the text changed.
	SetContent(content string)

	// Content returns the editor text.
	Content() string

	// Document returns a copy of the current document.
	Document() domain.Document

	// State returns the current session state.
	State() domain.SessionState

	// Title returns the window caption.
	Title() string

	// RequestNew resets to a clean untitled document.
	// Returns false if the user declined to discard changes.
	RequestNew() bool

	// RequestOpen replaces the document with the content of path.
	// Returns false with a nil error if the user declined to discard changes.
	RequestOpen(path string) (bool, error)

	// Save writes the document to its path, prompting for one if untitled.
	// Returns false with a nil error if the prompt was cancelled.
	Save() (bool, error)

	// SaveAs writes the document to path and adopts it.
	SaveAs(path string) error

	// ExportCopy writes the content to path without adopting it.
	ExportCopy(path string) error

	// RequestClose confirms discarding changes, then persists settings.
	// Returns true if the caller should terminate.
	RequestClose() bool

	// PersistSettings writes the configuration unless saving is disabled.
	PersistSettings() error

	// RecentFiles returns the recent files, most recent first.
	RecentFiles() []string

	// ClearRecentFiles empties the recent files list.
	ClearRecentFiles()

	// Preferences returns the live preferences.
	Preferences() domain.Preferences

	// SetMouseDisabled toggles mouse input.
	SetMouseDisabled(disabled bool)

	// SetOpacity sets the window opacity and returns the clamped value applied.
	SetOpacity(opacity float64) float64

	// SetOldUI toggles the plain theme.
	SetOldUI(enabled bool)

	// SetReloadLastFile toggles reopening the last file at startup.
	SetReloadLastFile(enabled bool)

	// SetSaveSettings toggles persistence. Disabling offers to delete the
	// existing settings file.
	SetSaveSettings(enabled bool)
}
