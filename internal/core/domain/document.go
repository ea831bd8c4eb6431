package domain

import "path/filepath"

// AppName is shown in window titles.
const AppName = "HTMLNotepad"

// untitledName is the display name of a document that was never saved.
const untitledName = "Untitled"

// Document is the file currently loaded for editing.
// A new value replaces the old one on new/open; it is never reset field by field.
type Document struct {
	// Path is the file location. Empty means untitled, never saved.
	Path string

	// Content is the editor text.
	Content string

	// Dirty is true if Content changed since the last load or save.
	Dirty bool
}

// NewDocument returns a clean, untitled document.
func NewDocument() Document {
	return Document{}
}

// IsUntitled returns true if the document was never saved or opened from disk.
func (d Document) IsUntitled() bool {
	return d.Path == ""
}

// Name returns the base file name, or "Untitled".
func (d Document) Name() string {
	if d.IsUntitled() {
		return untitledName
	}
	return filepath.Base(d.Path)
}

// State returns the session state derived from path and dirty flag.
func (d Document) State() SessionState {
	switch {
	case d.IsUntitled() && !d.Dirty:
		return StateCleanUntitled
	case d.IsUntitled():
		return StateDirtyUntitled
	case !d.Dirty:
		return StateCleanNamed
	default:
		return StateDirtyNamed
	}
}

// Title returns the window caption for the document.
func (d Document) Title() string {
	title := d.Name() + " - " + AppName
	if d.Dirty {
		title += " (Modified)"
	}
	return title
}

// SessionState is one of the four document session states.
type SessionState string

// Session states.
const (
	// StateCleanUntitled is the initial state: nothing to lose, nowhere to save.
	StateCleanUntitled SessionState = "clean_untitled"

	// StateDirtyUntitled has unsaved edits and no path.
	StateDirtyUntitled SessionState = "dirty_untitled"

	// StateCleanNamed matches the file on disk.
	StateCleanNamed SessionState = "clean_named"

	// StateDirtyNamed has unsaved edits to a named file.
	StateDirtyNamed SessionState = "dirty_named"
)

// IsDirty returns true for both dirty states.
func (s SessionState) IsDirty() bool {
	return s == StateDirtyUntitled || s == StateDirtyNamed
}

// String returns the string representation.
func (s SessionState) String() string {
	return string(s)
}
