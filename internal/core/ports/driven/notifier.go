package driven

import "github.com/custodia-labs/htmlnotepad/internal/core/domain"

// Notifier receives session notifications. Calls are fire-and-forget
// and happen on the caller's goroutine.
type Notifier interface {
	Notify(event domain.SessionEvent)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(event domain.SessionEvent)

// Notify calls f.
func (f NotifierFunc) Notify(event domain.SessionEvent) {
	f(event)
}
