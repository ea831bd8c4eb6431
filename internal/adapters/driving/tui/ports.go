// Package tui provides an interactive terminal editor for htmlnotepad.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driving"
)

// Ports aggregates the dependencies of the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session owns the open document and the preferences.
	Session driving.DocumentSession

	// Bridge must be the confirmer, save path prompter and notifier the
	// session was built with.
	Bridge *Bridge

	// Watcher reports edits made to the open file by other programs.
	// Optional.
	Watcher driven.DocumentWatcher
}

// NewPorts creates a new Ports aggregate.
func NewPorts(session driving.DocumentSession, bridge *Bridge) *Ports {
	return &Ports{
		Session: session,
		Bridge:  bridge,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Session == nil {
		return ErrMissingSession
	}
	if p.Bridge == nil {
		return ErrMissingBridge
	}
	return nil
}
