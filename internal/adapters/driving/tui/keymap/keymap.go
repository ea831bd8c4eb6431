// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
// Editor commands use ctrl chords so plain keys stay available for typing.
type KeyMap struct {
	// New starts an empty, untitled document.
	New key.Binding

	// Open prompts for a file to open.
	Open key.Binding

	// Save writes the document to its path.
	Save key.Binding

	// SaveAs prompts for a new path and saves there.
	SaveAs key.Binding

	// Export writes a copy without adopting its path.
	Export key.Binding

	// Recent shows the recent files list.
	Recent key.Binding

	// ToggleTheme switches between the styled and the plain theme.
	ToggleTheme key.Binding

	// ToggleMouse enables or disables mouse input.
	ToggleMouse key.Binding

	// ToggleReload switches reopening the last file at startup.
	ToggleReload key.Binding

	// ToggleSaveSettings switches writing settings at exit.
	ToggleSaveSettings key.Binding

	// OpacityDown dims the editor.
	OpacityDown key.Binding

	// OpacityUp brightens the editor.
	OpacityUp key.Binding

	// Help shows the help view.
	Help key.Binding

	// Quit runs the close flow.
	Quit key.Binding

	// Yes accepts a confirmation.
	Yes key.Binding

	// No declines a confirmation.
	No key.Binding

	// Cancel closes a prompt or list.
	Cancel key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// ClearRecent empties the recent files list.
	ClearRecent key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("^n", "new"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("^o", "open"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "save"),
		),
		SaveAs: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("^a", "save as"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("^e", "export copy"),
		),
		Recent: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^r", "recent"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("^t", "old ui"),
		),
		ToggleMouse: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "mouse"),
		),
		ToggleReload: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "reload last file"),
		),
		ToggleSaveSettings: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("f4", "save settings"),
		),
		OpacityDown: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "opacity -"),
		),
		OpacityUp: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("f6", "opacity +"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("^q", "quit"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		ClearRecent: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear list"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Open, k.Help, k.Quit}
}

// PromptHelp returns keybindings for a confirmation prompt.
func (k *KeyMap) PromptHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Cancel}
}

// RecentHelp returns keybindings for the recent files list.
func (k *KeyMap) RecentHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.ClearRecent, k.Cancel}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Open, k.Save, k.SaveAs, k.Export, k.Recent},
		{k.ToggleTheme, k.ToggleMouse, k.ToggleReload, k.ToggleSaveSettings, k.OpacityDown, k.OpacityUp},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
