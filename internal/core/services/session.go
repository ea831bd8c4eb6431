package services

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driving"
	"github.com/custodia-labs/htmlnotepad/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.DocumentSession = (*SessionService)(nil)

// Confirmation prompts.
const (
	discardTitle   = "Confirmation"
	discardMessage = "All unsaved changes will be lost! Continue?"

	deleteSettingsTitle   = "Confirmation"
	deleteSettingsMessage = "Would you also like to delete the settings file?"
)

// SessionService owns the open document, the preferences and the recent
// files list. All methods run on the caller's goroutine; the type is not
// safe for concurrent use.
type SessionService struct {
	files       driven.FileStore
	configStore driven.ConfigStore
	confirmer   driven.Confirmer
	prompter    driven.SavePathPrompter
	notifier    driven.Notifier

	doc    domain.Document
	prefs  domain.Preferences
	recent *domain.RecentFiles
}

// SessionOption configures optional session collaborators.
type SessionOption func(*SessionService)

// WithSavePathPrompter sets the prompter used when saving an untitled document.
func WithSavePathPrompter(p driven.SavePathPrompter) SessionOption {
	return func(s *SessionService) {
		s.prompter = p
	}
}

// WithNotifier sets the receiver of session notifications.
func WithNotifier(n driven.Notifier) SessionOption {
	return func(s *SessionService) {
		s.notifier = n
	}
}

// NewSessionService creates a session in the clean untitled state with
// default preferences. Call Restore to apply persisted settings.
func NewSessionService(
	files driven.FileStore,
	configStore driven.ConfigStore,
	confirmer driven.Confirmer,
	opts ...SessionOption,
) (*SessionService, error) {
	if files == nil {
		return nil, fmt.Errorf("%w: file store is required", domain.ErrInvalidInput)
	}
	if configStore == nil {
		return nil, fmt.Errorf("%w: config store is required", domain.ErrInvalidInput)
	}
	if confirmer == nil {
		return nil, fmt.Errorf("%w: confirmer is required", domain.ErrInvalidInput)
	}

	s := &SessionService{
		files:       files,
		configStore: configStore,
		confirmer:   confirmer,
		doc:         domain.NewDocument(),
		prefs:       domain.DefaultPreferences(),
		recent:      domain.NewRecentFiles(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Restore loads the persisted configuration and applies it.
func (s *SessionService) Restore() error {
	logger.Section("Restore settings")

	cfg, loadErr := s.configStore.Load()
	switch {
	case loadErr == nil:
		logger.Debug("loaded settings from %s (version %d)", s.configStore.Path(), cfg.SchemaVersion)
	case errors.Is(loadErr, domain.ErrConfigVersionMismatch):
		logger.Warn("%v", loadErr)
		s.emit(domain.SessionEvent{Kind: domain.EventSettingsWarning, Message: loadErr.Error()})
	case errors.Is(loadErr, fs.ErrNotExist):
		logger.Debug("no settings file at %s, using defaults", s.configStore.Path())
		loadErr = nil
	default:
		logger.Warn("loading settings failed: %v", loadErr)
	}

	prefs := preferencesFromConfig(cfg)
	s.prefs = prefs
	s.recent = domain.NewRecentFiles(prefs.RecentFiles...)
	s.emit(domain.SessionEvent{Kind: domain.EventPreferencesChanged, Preferences: s.Preferences()})
	s.emitRecent()

	if prefs.ReloadLastFile && prefs.LastFile != "" {
		if _, err := s.RequestOpen(prefs.LastFile); err != nil {
			logger.Warn("reloading last file failed: %v", err)
		}
	}

	return loadErr
}

// MarkModified flags unsaved changes. It is a no-op if already dirty.
func (s *SessionService) MarkModified() {
	if s.doc.Dirty {
		return
	}
	s.doc.Dirty = true
	s.emitDocument()
}

// SetContent replaces the editor text.
func (s *SessionService) SetContent(content string) {
	if content == s.doc.Content {
		return
	}
	s.doc.Content = content
	s.MarkModified()
}

// Content returns the editor text.
func (s *SessionService) Content() string {
	return s.doc.Content
}

// Document returns a copy of the current document.
func (s *SessionService) Document() domain.Document {
	return s.doc
}

// State returns the current session state.
func (s *SessionService) State() domain.SessionState {
	return s.doc.State()
}

// Title returns the window caption.
func (s *SessionService) Title() string {
	return s.doc.Title()
}

// RequestNew resets to a clean untitled document after confirmation.
func (s *SessionService) RequestNew() bool {
	if !s.confirmDiscard() {
		return false
	}
	s.replaceDocument(domain.NewDocument())
	return true
}

// RequestOpen loads path after confirmation. A read failure leaves the
// current document untouched.
func (s *SessionService) RequestOpen(path string) (bool, error) {
	if path == "" {
		return false, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	if !s.confirmDiscard() {
		return false, nil
	}

	path = absPath(path)
	content, err := s.files.Read(path)
	if err != nil {
		return false, err
	}

	s.replaceDocument(domain.Document{Path: path, Content: content})
	s.recordRecent(path)
	logger.Debug("opened %s", path)
	return true, nil
}

// Save writes the document to its path. An untitled document is routed
// through the save path prompter.
func (s *SessionService) Save() (bool, error) {
	if s.doc.IsUntitled() {
		if s.prompter == nil {
			return false, domain.ErrNoDocumentPath
		}
		path, ok := s.prompter.PromptSavePath("")
		if !ok || path == "" {
			return false, nil
		}
		if err := s.SaveAs(path); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := s.write(s.doc.Path); err != nil {
		return false, err
	}
	return true, nil
}

// SaveAs adopts path and saves to it. On failure the previous path is kept.
func (s *SessionService) SaveAs(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	return s.write(absPath(path))
}

// ExportCopy writes the content to path without adopting it.
func (s *SessionService) ExportCopy(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	path = absPath(path)
	if err := s.files.Write(path, s.doc.Content); err != nil {
		return err
	}
	logger.Debug("exported copy to %s", path)
	return nil
}

// RequestClose confirms discarding changes and persists settings.
// The caller terminates the process when it returns true.
func (s *SessionService) RequestClose() bool {
	if !s.confirmDiscard() {
		return false
	}
	if err := s.PersistSettings(); err != nil {
		logger.Error("saving settings failed: %v", err)
	}
	return true
}

// PersistSettings writes the live preferences unless saving is disabled.
func (s *SessionService) PersistSettings() error {
	if !s.prefs.SaveSettings {
		logger.Debug("settings persistence disabled, not writing %s", s.configStore.Path())
		return nil
	}

	prefs := s.Preferences()
	prefs.LastFile = s.doc.Path
	if err := s.configStore.Save(configFromPreferences(prefs)); err != nil {
		return err
	}
	logger.Debug("saved settings to %s", s.configStore.Path())
	return nil
}

// RecentFiles returns the recent files, most recent first.
func (s *SessionService) RecentFiles() []string {
	return s.recent.Entries()
}

// ClearRecentFiles empties the recent files list.
func (s *SessionService) ClearRecentFiles() {
	s.recent.Clear()
	s.emitRecent()
}

// Preferences returns the live preferences.
func (s *SessionService) Preferences() domain.Preferences {
	prefs := s.prefs
	prefs.RecentFiles = s.recent.Entries()
	return prefs
}

// SetMouseDisabled toggles mouse input.
func (s *SessionService) SetMouseDisabled(disabled bool) {
	s.prefs.MouseDisabled = disabled
	s.emitPreferences()
}

// SetOpacity sets the window opacity, clamped so the window stays visible.
func (s *SessionService) SetOpacity(opacity float64) float64 {
	s.prefs.Opacity = domain.ClampOpacity(opacity)
	s.emitPreferences()
	return s.prefs.Opacity
}

// SetOldUI toggles the plain theme.
func (s *SessionService) SetOldUI(enabled bool) {
	s.prefs.OldUI = enabled
	s.emitPreferences()
}

// SetReloadLastFile toggles reopening the last file at startup.
func (s *SessionService) SetReloadLastFile(enabled bool) {
	s.prefs.ReloadLastFile = enabled
	s.emitPreferences()
}

// SetSaveSettings toggles persistence. When disabling, the user is asked
// whether the existing file should be removed; removal is best-effort.
func (s *SessionService) SetSaveSettings(enabled bool) {
	s.prefs.SaveSettings = enabled
	s.emitPreferences()
	if enabled {
		return
	}
	if !s.confirmer.Confirm(deleteSettingsTitle, deleteSettingsMessage) {
		return
	}
	if err := s.configStore.Delete(); err != nil {
		logger.Warn("removing settings file failed: %v", err)
		return
	}
	logger.Info("removed settings file %s", s.configStore.Path())
}

// confirmDiscard returns true if the document may be discarded.
// A clean document never prompts.
func (s *SessionService) confirmDiscard() bool {
	if !s.doc.Dirty {
		return true
	}
	return s.confirmer.Confirm(discardTitle, discardMessage)
}

// write saves the content to path and adopts it on success.
// On failure nothing changes.
func (s *SessionService) write(path string) error {
	if err := s.files.Write(path, s.doc.Content); err != nil {
		return err
	}
	s.replaceDocument(domain.Document{Path: path, Content: s.doc.Content})
	s.recordRecent(path)
	logger.Debug("saved %s", path)
	return nil
}

func (s *SessionService) replaceDocument(doc domain.Document) {
	s.doc = doc
	s.emitDocument()
}

func (s *SessionService) recordRecent(path string) {
	s.recent.Record(path)
	s.emitRecent()
}

func (s *SessionService) emitDocument() {
	s.emit(domain.SessionEvent{Kind: domain.EventDirtyChanged, Dirty: s.doc.Dirty})
	s.emit(domain.SessionEvent{Kind: domain.EventTitleChanged, Title: s.doc.Title()})
}

func (s *SessionService) emitRecent() {
	s.emit(domain.SessionEvent{Kind: domain.EventRecentChanged, Recent: s.recent.Entries()})
}

func (s *SessionService) emitPreferences() {
	s.emit(domain.SessionEvent{Kind: domain.EventPreferencesChanged, Preferences: s.Preferences()})
}

func (s *SessionService) emit(event domain.SessionEvent) {
	if s.notifier != nil {
		s.notifier.Notify(event)
	}
}

// absPath returns an absolute form of path, or path itself if that fails.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
