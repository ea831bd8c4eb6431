package domain

// EventKind identifies a session notification.
type EventKind string

// Session notification kinds consumed by the presentation layer.
const (
	// EventTitleChanged carries a new window title.
	EventTitleChanged EventKind = "title_changed"

	// EventDirtyChanged carries the new dirty flag.
	EventDirtyChanged EventKind = "dirty_changed"

	// EventRecentChanged carries the new recent files list.
	EventRecentChanged EventKind = "recent_changed"

	// EventPreferencesChanged carries the new preferences.
	EventPreferencesChanged EventKind = "preferences_changed"

	// EventSettingsWarning carries a user-visible, non-blocking warning
	// such as a configuration version mismatch.
	EventSettingsWarning EventKind = "settings_warning"
)

// SessionEvent is a fire-and-forget notification from the session.
// Only the fields relevant to Kind are set.
type SessionEvent struct {
	Kind        EventKind
	Title       string
	Dirty       bool
	Recent      []string
	Preferences Preferences
	Message     string
}
