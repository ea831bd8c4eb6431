// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the session to function:
//
//   - FileStore: Reads and writes document files
//   - ConfigStore: Versioned preference persistence
//   - Confirmer: Synchronous yes/no prompt before destructive actions
//
// # Optional Interfaces
//
// These can be nil - the session degrades gracefully:
//
//   - SavePathPrompter: Asks for a destination when saving an untitled document.
//     Without it, Save on an untitled document returns ErrNoDocumentPath.
//   - Notifier: Receives title, dirty, recent list and warning notifications.
//   - DocumentWatcher: Reports changes made to the open file by other programs.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
