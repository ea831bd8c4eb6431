package domain

import "math"

// Opacity bounds. The window is never made fully transparent.
const (
	MinOpacity     = 0.01
	MaxOpacity     = 1.0
	DefaultOpacity = 1.0
)

// Preferences holds the user options persisted in the configuration file.
type Preferences struct {
	// MouseDisabled makes the editor ignore mouse input.
	MouseDisabled bool

	// Opacity is the window opacity in [MinOpacity, MaxOpacity].
	Opacity float64

	// OldUI selects the plain, unstyled theme.
	OldUI bool

	// ReloadLastFile reopens LastFile at startup.
	ReloadLastFile bool

	// SaveSettings enables writing the configuration at shutdown.
	// It is not persisted: a file only exists if it was on.
	SaveSettings bool

	// LastFile is the document open at shutdown, if ReloadLastFile was on.
	LastFile string

	// RecentFiles is the MRU list, most recent first.
	RecentFiles []string
}

// DefaultPreferences returns the preferences used when no usable
// configuration file exists.
func DefaultPreferences() Preferences {
	return Preferences{
		MouseDisabled:  false,
		Opacity:        DefaultOpacity,
		OldUI:          false,
		ReloadLastFile: false,
		SaveSettings:   true,
	}
}

// ClampOpacity limits v to [MinOpacity, MaxOpacity].
func ClampOpacity(v float64) float64 {
	if math.IsNaN(v) || v < MinOpacity {
		return MinOpacity
	}
	if v > MaxOpacity {
		return MaxOpacity
	}
	return v
}
