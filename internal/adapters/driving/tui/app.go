package tui

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
	"github.com/custodia-labs/htmlnotepad/internal/logger"
)

const (
	// selfWriteWindow is how long after our own save a disk write is ignored.
	selfWriteWindow = 2 * time.Second

	// opacityStep is the change applied by the opacity keys.
	opacityStep = 0.1

	// dimOpacity is the opacity below which editor text is rendered faint.
	dimOpacity = 0.5

	// chromeHeight is the number of lines used by the header and status bar.
	chromeHeight = 2
)

// pathPurpose records why the path prompt is open.
type pathPurpose int

const (
	pathOpen pathPurpose = iota
	pathSaveAs
	pathExport
	pathSessionSave
)

func (p pathPurpose) label() string {
	switch p {
	case pathOpen:
		return "Open"
	case pathExport:
		return "Export to"
	default:
		return "Save as"
	}
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to the session and its bridge.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	editor     textarea.Model
	pathInput  *input.PathInput
	recentList *list.FileList
	statusBar  *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// purpose is what the open path prompt is for.
	purpose pathPurpose

	// question is the confirmation being shown, if any.
	question *Question

	// pending is replayed once the user answers a question.
	pending func() tea.Cmd

	// title and prefs mirror the last session notifications.
	title string
	prefs domain.Preferences

	// startFile is opened by Init.
	startFile string

	watched     string
	lastSave    time.Time
	now         func() time.Time
	diskChanges chan driven.DiskChange

	// err holds the last error that occurred.
	err error

	width  int
	height int

	ready    bool
	quitting bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The session should already be restored.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	prefs := ports.Session.Preferences()
	s := styles.ForOldUI(prefs.OldUI)
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		editor:      newEditor(prefs),
		pathInput:   input.NewPathInput(s),
		recentList:  list.NewFileList(s),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewEditor,
		title:       ports.Session.Title(),
		prefs:       prefs,
		now:         time.Now,
		diskChanges: make(chan driven.DiskChange, 4),
	}
	a.editor.SetValue(ports.Session.Content())
	a.recentList.SetPaths(ports.Session.RecentFiles())
	return a, nil
}

func newEditor(prefs domain.Preferences) textarea.Model {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = !prefs.OldUI
	ta.Placeholder = "Start typing..."
	ta.Focus()
	return ta
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// OpenOnStart makes Init open path.
func (a *App) OpenOnStart(path string) *App {
	a.startFile = path
	return a
}

// ProgramOptions returns the bubbletea options matching the preferences.
func (a *App) ProgramOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(a.ctx)}
	if !a.prefs.MouseDisabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}

	if a.startFile != "" {
		path := a.startFile
		a.startFile = ""
		cmds = append(cmds, a.run(func() tea.Cmd { return a.open(path) }))
	}
	cmds = append(cmds, a.applyEvents(), tea.SetWindowTitle(a.title))

	if a.ports.Watcher != nil {
		cmds = append(cmds, a.startWatcher())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case messages.DiskChanged:
		a.handleDiskChange(msg.Change)
		return a, waitForDiskChange(a.diskChanges)

	case messages.ErrorOccurred:
		a.fail(msg.Err)
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewRecent {
			a.showRecent()
		}
		return a, nil

	case messages.Quit:
		return a, a.run(a.close)
	}

	// Forward other messages (cursor blink, paste) to the focused component
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewEditor:
		cmd = a.updateEditor(msg)
	case messages.ViewPathPrompt:
		a.pathInput, cmd = a.pathInput.Update(msg)
	case messages.ViewConfirm, messages.ViewRecent, messages.ViewHelp:
		// Passive views
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch a.currentView {
	case messages.ViewConfirm:
		return a.handleConfirmKey(msg.String())
	case messages.ViewPathPrompt:
		return a.handlePathKey(msg)
	case messages.ViewRecent:
		return a.handleRecentKey(msg)
	case messages.ViewHelp:
		k := msg.String()
		if keymap.Matches(k, a.keymap.Cancel) || keymap.Matches(k, a.keymap.Help) {
			a.currentView = messages.ViewEditor
		}
		if keymap.Matches(k, a.keymap.Quit) {
			a.currentView = messages.ViewEditor
			return a.run(a.close)
		}
		return nil
	case messages.ViewEditor:
	}
	return a.handleEditorKey(msg)
}

//nolint:gocyclo // one case per editor command
func (a *App) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	km := a.keymap

	switch {
	case keymap.Matches(k, km.Quit):
		return a.run(a.close)
	case keymap.Matches(k, km.New):
		return a.run(a.newDocument)
	case keymap.Matches(k, km.Open):
		return a.askPath(pathOpen, "")
	case keymap.Matches(k, km.Save):
		return a.run(a.save)
	case keymap.Matches(k, km.SaveAs):
		return a.askPath(pathSaveAs, a.ports.Session.Document().Path)
	case keymap.Matches(k, km.Export):
		return a.askPath(pathExport, "")
	case keymap.Matches(k, km.Recent):
		a.showRecent()
		return nil
	case keymap.Matches(k, km.Help):
		a.currentView = messages.ViewHelp
		return nil
	case keymap.Matches(k, km.ToggleTheme):
		oldUI := !a.prefs.OldUI
		return a.run(func() tea.Cmd {
			a.ports.Session.SetOldUI(oldUI)
			return nil
		})
	case keymap.Matches(k, km.ToggleMouse):
		disabled := !a.prefs.MouseDisabled
		return a.run(func() tea.Cmd {
			a.ports.Session.SetMouseDisabled(disabled)
			return nil
		})
	case keymap.Matches(k, km.ToggleReload):
		enabled := !a.prefs.ReloadLastFile
		return a.run(func() tea.Cmd {
			a.ports.Session.SetReloadLastFile(enabled)
			a.info(onOff("Reload last file", enabled))
			return nil
		})
	case keymap.Matches(k, km.ToggleSaveSettings):
		enabled := !a.prefs.SaveSettings
		return a.run(func() tea.Cmd {
			a.ports.Session.SetSaveSettings(enabled)
			a.info(onOff("Save settings", enabled))
			return nil
		})
	case keymap.Matches(k, km.OpacityDown), keymap.Matches(k, km.OpacityUp):
		step := opacityStep
		if keymap.Matches(k, km.OpacityDown) {
			step = -step
		}
		target := math.Round((a.prefs.Opacity+step)*100) / 100
		return a.run(func() tea.Cmd {
			applied := a.ports.Session.SetOpacity(target)
			a.info(fmt.Sprintf("Opacity %d%%", int(math.Round(applied*100))))
			return nil
		})
	}

	return tea.Batch(a.updateEditor(msg), a.applyEvents())
}

// updateEditor forwards msg to the textarea and reports edits to the session.
func (a *App) updateEditor(msg tea.Msg) tea.Cmd {
	before := a.editor.Value()
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	if after := a.editor.Value(); after != before {
		a.ports.Session.SetContent(after)
	}
	return cmd
}

func (a *App) handleConfirmKey(k string) tea.Cmd {
	switch {
	case keymap.Matches(k, a.keymap.Yes):
		action := a.endPrompt()
		if action == nil {
			return nil
		}
		a.ports.Bridge.Answer(true)
		return a.run(action)
	case keymap.Matches(k, a.keymap.No), keymap.Matches(k, a.keymap.Cancel):
		// The probe run already behaved as a decline
		a.endPrompt()
	}
	return nil
}

func (a *App) handlePathKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Cancel):
		a.endPrompt()
		a.pathInput.Blur()
		return nil

	case keymap.Matches(k, a.keymap.Select):
		path := strings.TrimSpace(a.pathInput.Value())
		purpose := a.purpose
		action := a.endPrompt()
		a.pathInput.Blur()
		if path == "" {
			return nil
		}

		switch purpose {
		case pathOpen:
			return a.run(func() tea.Cmd { return a.open(path) })
		case pathSaveAs:
			return a.run(func() tea.Cmd { return a.saveAs(path) })
		case pathExport:
			return a.run(func() tea.Cmd { return a.export(path) })
		case pathSessionSave:
			if action == nil {
				return nil
			}
			a.ports.Bridge.ProvidePath(path)
			return a.run(action)
		}
		return nil
	}

	var cmd tea.Cmd
	a.pathInput, cmd = a.pathInput.Update(msg)
	return cmd
}

func (a *App) handleRecentKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Cancel), keymap.Matches(k, a.keymap.Recent):
		a.currentView = messages.ViewEditor
		a.statusBar.Clear()
	case keymap.Matches(k, a.keymap.Select):
		path := a.recentList.SelectedPath()
		a.currentView = messages.ViewEditor
		a.statusBar.Clear()
		if path == "" {
			return nil
		}
		return a.run(func() tea.Cmd { return a.open(path) })
	case keymap.Matches(k, a.keymap.ClearRecent):
		a.ports.Session.ClearRecentFiles()
		return a.applyEvents()
	default:
		a.recentList, _ = a.recentList.Update(msg)
	}
	return nil
}

// run executes a session action. If the session raised a question the
// bridge could not answer, the question is shown and the action is kept
// for replay once the user responds.
func (a *App) run(action func() tea.Cmd) tea.Cmd {
	cmd := action()
	a.ports.Bridge.discardHeld()

	if q := a.ports.Bridge.TakeQuestion(); q != nil {
		a.pending = action
		return tea.Batch(cmd, a.ask(q), a.applyEvents())
	}
	return tea.Batch(cmd, a.applyEvents())
}

func (a *App) ask(q *Question) tea.Cmd {
	switch q.Kind {
	case QuestionSavePath:
		a.purpose = pathSessionSave
		a.currentView = messages.ViewPathPrompt
		a.statusBar.Show(status.StatePrompt, pathSessionSave.label())
		return a.pathInput.Start(pathSessionSave.label(), q.Suggested)
	default:
		a.question = q
		a.currentView = messages.ViewConfirm
		a.statusBar.Show(status.StatePrompt, q.Message)
		return nil
	}
}

func (a *App) askPath(purpose pathPurpose, suggested string) tea.Cmd {
	a.purpose = purpose
	a.pending = nil
	a.currentView = messages.ViewPathPrompt
	a.statusBar.Show(status.StatePrompt, purpose.label())
	return a.pathInput.Start(purpose.label(), suggested)
}

// endPrompt returns to the editor and hands back the pending action.
func (a *App) endPrompt() func() tea.Cmd {
	action := a.pending
	a.pending = nil
	a.question = nil
	a.currentView = messages.ViewEditor
	a.statusBar.Clear()
	return action
}

func (a *App) showRecent() {
	a.recentList.SetPaths(a.ports.Session.RecentFiles())
	a.currentView = messages.ViewRecent
	a.statusBar.Show(status.StateRecent, "Recent files")
}

func (a *App) newDocument() tea.Cmd {
	if a.ports.Session.RequestNew() {
		a.syncEditor()
		a.info("New document")
	}
	return nil
}

func (a *App) open(path string) tea.Cmd {
	opened, err := a.ports.Session.RequestOpen(path)
	if err != nil {
		a.fail(err)
		return nil
	}
	if opened {
		a.syncEditor()
		a.info("Opened " + a.ports.Session.Document().Name())
	}
	return nil
}

func (a *App) save() tea.Cmd {
	saved, err := a.ports.Session.Save()
	if err != nil {
		a.fail(err)
		return nil
	}
	if saved {
		a.lastSave = a.now()
		a.info("Saved " + a.ports.Session.Document().Name())
	}
	return nil
}

func (a *App) saveAs(path string) tea.Cmd {
	if err := a.ports.Session.SaveAs(path); err != nil {
		a.fail(err)
		return nil
	}
	a.lastSave = a.now()
	a.info("Saved " + a.ports.Session.Document().Name())
	return nil
}

func (a *App) export(path string) tea.Cmd {
	if err := a.ports.Session.ExportCopy(path); err != nil {
		a.fail(err)
		return nil
	}
	a.info("Exported copy to " + path)
	return nil
}

func (a *App) close() tea.Cmd {
	if !a.ports.Session.RequestClose() {
		return nil
	}
	a.quitting = true
	return tea.Quit
}

// syncEditor loads the session content into the textarea.
func (a *App) syncEditor() {
	a.editor.SetValue(a.ports.Session.Content())
}

// applyEvents consumes queued session notifications.
func (a *App) applyEvents() tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range a.ports.Bridge.Drain() {
		switch ev.Kind {
		case domain.EventTitleChanged:
			if ev.Title != a.title {
				a.title = ev.Title
				cmds = append(cmds, tea.SetWindowTitle(ev.Title))
			}
		case domain.EventRecentChanged:
			a.recentList.SetPaths(ev.Recent)
		case domain.EventPreferencesChanged:
			cmds = append(cmds, a.applyPreferences(ev.Preferences))
		case domain.EventSettingsWarning:
			a.statusBar.Show(status.StateWarning, ev.Message)
		case domain.EventDirtyChanged:
			// The title carries the modified marker
		}
	}
	a.retarget()
	return tea.Batch(cmds...)
}

func (a *App) applyPreferences(p domain.Preferences) tea.Cmd {
	prev := a.prefs
	a.prefs = p

	if p.OldUI != prev.OldUI {
		a.setStyles(styles.ForOldUI(p.OldUI))
		a.editor.ShowLineNumbers = !p.OldUI
		if a.ready {
			a.editor.SetWidth(a.width)
		}
	}
	if p.MouseDisabled != prev.MouseDisabled {
		if p.MouseDisabled {
			return tea.DisableMouse
		}
		return tea.EnableMouseCellMotion
	}
	return nil
}

func (a *App) setStyles(s *styles.Styles) {
	a.styles = s
	a.pathInput.SetStyles(s)
	a.recentList.SetStyles(s)
	a.statusBar.SetStyles(s)
}

func (a *App) startWatcher() tea.Cmd {
	w := a.ports.Watcher
	ch := a.diskChanges
	ctx := a.ctx
	go func() {
		err := w.Run(ctx, func(c driven.DiskChange) {
			select {
			case ch <- c:
			default:
				logger.Debug("dropping disk change for %s", c.Path)
			}
		})
		if err != nil {
			logger.Warn("watcher stopped: %v", err)
		}
	}()
	a.retarget()
	return waitForDiskChange(ch)
}

func waitForDiskChange(ch <-chan driven.DiskChange) tea.Cmd {
	return func() tea.Msg {
		return messages.DiskChanged{Change: <-ch}
	}
}

// retarget points the watcher at the current document.
func (a *App) retarget() {
	if a.ports.Watcher == nil {
		return
	}
	path := a.ports.Session.Document().Path
	if path == a.watched {
		return
	}
	if err := a.ports.Watcher.Watch(path); err != nil {
		logger.Warn("cannot watch %s: %v", path, err)
	}
	a.watched = path
}

func (a *App) handleDiskChange(c driven.DiskChange) {
	if c.Path == "" || c.Path != a.ports.Session.Document().Path {
		return
	}
	if c.Kind == driven.DiskChangeWritten && a.now().Sub(a.lastSave) < selfWriteWindow {
		logger.Debug("ignoring our own write to %s", c.Path)
		return
	}

	name := filepath.Base(c.Path)
	switch c.Kind {
	case driven.DiskChangeRemoved:
		a.statusBar.Show(status.StateWarning, name+" was removed from disk")
	default:
		a.statusBar.Show(status.StateWarning, name+" was changed by another program")
	}
}

func (a *App) fail(err error) {
	a.err = err
	logger.Warn("%v", err)
	a.statusBar.Show(status.StateError, err.Error())
}

func (a *App) info(message string) {
	a.err = nil
	a.statusBar.Show(status.StateInfo, message)
}

func onOff(label string, on bool) string {
	if on {
		return label + ": on"
	}
	return label + ": off"
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewConfirm:
		body = a.viewConfirm()
	case messages.ViewPathPrompt:
		body = a.viewPathPrompt()
	case messages.ViewRecent:
		body = a.recentList.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.viewEditor()
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.viewHeader(), body, a.statusBar.View())
}

func (a *App) viewHeader() string {
	var flags []string
	if a.prefs.MouseDisabled {
		flags = append(flags, "mouse off")
	}
	if a.prefs.Opacity < domain.MaxOpacity {
		flags = append(flags, fmt.Sprintf("opacity %d%%", int(math.Round(a.prefs.Opacity*100))))
	}
	if a.prefs.ReloadLastFile {
		flags = append(flags, "reload last")
	}
	if !a.prefs.SaveSettings {
		flags = append(flags, "settings not saved")
	}

	header := a.styles.Title.Render(a.title)
	if len(flags) > 0 {
		header += "  " + a.styles.Muted.Render(strings.Join(flags, " · "))
	}
	return header
}

func (a *App) viewEditor() string {
	v := a.editor.View()
	if a.prefs.Opacity < dimOpacity {
		v = lipgloss.NewStyle().Faint(true).Render(v)
	}
	return v
}

func (a *App) viewConfirm() string {
	title, message := "Confirmation", ""
	if a.question != nil {
		title, message = a.question.Title, a.question.Message
	}
	dialog := a.styles.Dialog.Render(
		a.styles.Subtitle.Render(title) + "\n\n" +
			a.styles.Normal.Render(message) + "\n\n" +
			a.styles.Help.Render("[y] yes  [n] no"),
	)
	return a.place(dialog)
}

func (a *App) viewPathPrompt() string {
	return a.place(a.pathInput.View() + "\n\n" + a.styles.Help.Render("[enter] ok  [esc] cancel"))
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-6s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to editor"))
	return b.String()
}

// place centres content in the body area.
func (a *App) place(content string) string {
	return lipgloss.Place(a.width, a.bodyHeight(), lipgloss.Center, lipgloss.Center, content)
}

func (a *App) bodyHeight() int {
	if h := a.height - chromeHeight; h > 1 {
		return h
	}
	return 1
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, a.ProgramOptions()...)
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Question returns the confirmation being shown, or nil.
func (a *App) Question() *Question {
	return a.question
}

// Title returns the window title.
func (a *App) Title() string {
	return a.title
}

// EditorValue returns the text in the editor.
func (a *App) EditorValue() string {
	return a.editor.Value()
}

// Status returns the status bar state and message.
func (a *App) Status() (status.State, string) {
	return a.statusBar.State(), a.statusBar.Message()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Quitting returns whether the close flow completed.
func (a *App) Quitting() bool {
	return a.quitting
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.editor.SetWidth(width)
	a.editor.SetHeight(a.bodyHeight())
	a.pathInput.SetWidth(width)
	a.recentList.SetDimensions(width, a.bodyHeight())
	a.statusBar.SetWidth(width)
}
