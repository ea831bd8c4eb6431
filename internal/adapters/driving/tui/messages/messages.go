// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
)

// ViewChanged is sent when switching between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the text editor.
	ViewEditor ViewType = iota
	// ViewConfirm is a yes/no question over the editor.
	ViewConfirm
	// ViewPathPrompt asks for a file path.
	ViewPathPrompt
	// ViewRecent lists the recent files.
	ViewRecent
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewConfirm:
		return "confirm"
	case ViewPathPrompt:
		return "path_prompt"
	case ViewRecent:
		return "recent"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// DiskChanged signals that the open document changed on disk.
type DiskChanged struct {
	Change driven.DiskChange
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit after the close flow.
type Quit struct{}
