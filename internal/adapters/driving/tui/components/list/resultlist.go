// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui/styles"
)

// FileList displays file paths in a navigable list, one per line.
type FileList struct {
	paths    []string
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewFileList creates a new file list component.
func NewFileList(s *styles.Styles) *FileList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FileList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the file list.
func (r *FileList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *FileList) Update(msg tea.Msg) (*FileList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the file list.
func (r *FileList) View() string {
	header := r.styles.Subtitle.Render(fmt.Sprintf("Recent files (%d)", len(r.paths)))
	if len(r.paths) == 0 {
		return header + "\n\n" + r.styles.Muted.Render("No recent files")
	}

	lines := make([]string, 0, len(r.paths)+2)
	lines = append(lines, header, "")

	visibleCount := r.height - 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.paths) {
		end = len(r.paths)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderPath(i))
	}

	return strings.Join(lines, "\n")
}

// renderPath formats one entry as "n. name  directory".
func (r *FileList) renderPath(index int) string {
	path := r.paths[index]
	name := filepath.Base(path)
	dir := filepath.Dir(path)

	maxDirLen := r.width - len(name) - 10
	if maxDirLen < 10 {
		maxDirLen = 10
	}
	if len(dir) > maxDirLen {
		dir = "..." + dir[len(dir)-maxDirLen+3:]
	}

	label := fmt.Sprintf("%d. %s", index+1, name)
	if index == r.selected {
		return r.styles.Selected.Render("> "+label) + "  " + r.styles.Muted.Render(dir)
	}
	return r.styles.Normal.Render("  "+label) + "  " + r.styles.Muted.Render(dir)
}

// SetPaths replaces the entries and resets the selection.
func (r *FileList) SetPaths(paths []string) {
	r.paths = paths
	r.selected = 0
}

// Paths returns the current entries.
func (r *FileList) Paths() []string {
	return r.paths
}

// Selected returns the index of the selected entry.
func (r *FileList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *FileList) SetSelected(index int) {
	if index >= 0 && index < len(r.paths) {
		r.selected = index
	}
}

// SelectedPath returns the selected path, or "" if the list is empty.
func (r *FileList) SelectedPath() string {
	if r.selected < 0 || r.selected >= len(r.paths) {
		return ""
	}
	return r.paths[r.selected]
}

// MoveUp moves selection up.
func (r *FileList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *FileList) MoveDown() {
	if r.selected < len(r.paths)-1 {
		r.selected++
	}
}

// SetStyles swaps the styles, for theme changes.
func (r *FileList) SetStyles(s *styles.Styles) {
	if s != nil {
		r.styles = s
	}
}

// SetDimensions sets the component dimensions.
func (r *FileList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of entries.
func (r *FileList) Count() int {
	return len(r.paths)
}

// IsEmpty returns whether the list is empty.
func (r *FileList) IsEmpty() bool {
	return len(r.paths) == 0
}
