package tui

import (
	"sync"

	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
)

// Ensure Bridge implements the session callbacks.
var (
	_ driven.Confirmer        = (*Bridge)(nil)
	_ driven.SavePathPrompter = (*Bridge)(nil)
	_ driven.Notifier         = (*Bridge)(nil)
)

// QuestionKind identifies what the session asked for.
type QuestionKind int

const (
	// QuestionConfirm is a yes/no confirmation.
	QuestionConfirm QuestionKind = iota
	// QuestionSavePath asks for a destination file.
	QuestionSavePath
)

// Question is a prompt the session raised while no answer was held.
type Question struct {
	Kind      QuestionKind
	Title     string
	Message   string
	Suggested string
}

// Bridge connects the session's synchronous callbacks to the event loop.
//
// The session asks its questions in the middle of an operation, but the
// TUI can only show a prompt between updates. The bridge answers an
// unprepared question with "no" and records it; the app shows the prompt,
// stores the user's answer with Answer or ProvidePath and replays the
// operation, which then receives the stored answer. Answering "no" first
// is safe because a declined confirmation never changes session state.
type Bridge struct {
	mu     sync.Mutex
	answer *bool
	path   *string
	asked  *Question
	events []domain.SessionEvent
}

// NewBridge creates a bridge with nothing held.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Confirm returns the held answer, or records the question and returns false.
func (b *Bridge) Confirm(title, message string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.answer != nil {
		yes := *b.answer
		b.answer = nil
		return yes
	}
	b.asked = &Question{Kind: QuestionConfirm, Title: title, Message: message}
	return false
}

// PromptSavePath returns the held path, or records the question and cancels.
func (b *Bridge) PromptSavePath(suggested string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.path != nil {
		p := *b.path
		b.path = nil
		return p, p != ""
	}
	b.asked = &Question{Kind: QuestionSavePath, Title: "Save as", Suggested: suggested}
	return "", false
}

// Notify queues a session event for the next update.
func (b *Bridge) Notify(event domain.SessionEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

// Answer holds the reply for the next confirmation.
func (b *Bridge) Answer(yes bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.answer = &yes
}

// ProvidePath holds the destination for the next save path prompt.
func (b *Bridge) ProvidePath(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.path = &path
}

// TakeQuestion returns and clears the recorded question, or nil.
func (b *Bridge) TakeQuestion() *Question {
	b.mu.Lock()
	defer b.mu.Unlock()
	q := b.asked
	b.asked = nil
	return q
}

// Drain returns and clears the queued events.
func (b *Bridge) Drain() []domain.SessionEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// discardHeld drops answers an operation did not consume.
func (b *Bridge) discardHeld() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.answer = nil
	b.path = nil
}
