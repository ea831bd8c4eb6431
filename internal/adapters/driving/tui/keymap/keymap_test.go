package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_EditorBindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"new", km.New, "ctrl+n"},
		{"open", km.Open, "ctrl+o"},
		{"save", km.Save, "ctrl+s"},
		{"save as", km.SaveAs, "ctrl+a"},
		{"export", km.Export, "ctrl+e"},
		{"recent", km.Recent, "ctrl+r"},
		{"theme", km.ToggleTheme, "ctrl+t"},
		{"help", km.Help, "f1"},
		{"quit", km.Quit, "ctrl+q"},
		{"quit interrupt", km.Quit, "ctrl+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.binding.Keys(), tt.key)
		})
	}
}

func TestDefaultKeyMap_EditorBindingsAvoidPlainKeys(t *testing.T) {
	km := DefaultKeyMap()

	// Anything active while typing must not steal printable characters
	for _, group := range km.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				assert.Greater(t, len(k), 1, "binding %q would shadow typing", k)
			}
		}
	}
}

func TestDefaultKeyMap_PromptBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Yes.Keys(), "y")
	assert.Contains(t, km.No.Keys(), "n")
	assert.Contains(t, km.Cancel.Keys(), "esc")
	assert.Contains(t, km.Select.Keys(), "enter")
}

func TestDefaultKeyMap_ListBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "down")
	assert.Contains(t, km.Down.Keys(), "j")
	assert.Contains(t, km.ClearRecent.Keys(), "x")
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	require.Len(t, help, 4)
	assert.Equal(t, "save", help[0].Help().Desc)
	assert.Equal(t, "quit", help[3].Help().Desc)
}

func TestKeyMap_PromptHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.PromptHelp(), 3)
}

func TestKeyMap_RecentHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.RecentHelp(), 5)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.FullHelp()

	require.Len(t, help, 3)
	assert.Len(t, help[0], 6)
	assert.Len(t, help[1], 6)
	assert.Len(t, help[2], 2)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+s", km.Save))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("s", km.Save))
	assert.False(t, Matches("", km.Save))
}
