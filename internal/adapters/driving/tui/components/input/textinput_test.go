package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui/styles"
)

func TestNewPathInput(t *testing.T) {
	input := NewPathInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.False(t, input.Focused())
	assert.Equal(t, "Path", input.Label())
}

func TestNewPathInput_NilStyles(t *testing.T) {
	input := NewPathInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestPathInput_Init(t *testing.T) {
	assert.NotNil(t, NewPathInput(nil).Init())
}

func TestPathInput_Start(t *testing.T) {
	input := NewPathInput(nil)
	input.SetValue("stale")

	input.Start("Save as", "/tmp/page.html")

	assert.Equal(t, "Save as", input.Label())
	assert.Equal(t, "/tmp/page.html", input.Value())
	assert.True(t, input.Focused())
}

func TestPathInput_Start_Empty(t *testing.T) {
	input := NewPathInput(nil)
	input.SetValue("stale")

	input.Start("Open", "")

	assert.Equal(t, "", input.Value())
}

func TestPathInput_Update(t *testing.T) {
	input := NewPathInput(nil)
	input.Start("Open", "")

	updated, _ := input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a.txt")})

	assert.Equal(t, input, updated)
	assert.Equal(t, "a.txt", input.Value())
}

func TestPathInput_View(t *testing.T) {
	input := NewPathInput(nil)
	input.Start("Export to", "copy.html")

	view := input.View()

	assert.Contains(t, view, "Export to:")
	assert.Contains(t, view, "copy.html")
}

func TestPathInput_Blur(t *testing.T) {
	input := NewPathInput(nil)
	input.Focus()

	input.Blur()

	assert.False(t, input.Focused())
}

func TestPathInput_SetWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"wide", 120},
		{"narrow", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := NewPathInput(nil)
			input.SetWidth(tt.width)

			assert.Equal(t, tt.width, input.Width())
			assert.GreaterOrEqual(t, input.textinput.Width, 20)
		})
	}
}

func TestPathInput_SetStyles(t *testing.T) {
	input := NewPathInput(nil)
	plain := styles.ForOldUI(true)

	input.SetStyles(plain)

	assert.Equal(t, plain, input.styles)
}
