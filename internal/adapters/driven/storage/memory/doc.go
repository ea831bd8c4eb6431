// Package memory provides in-memory implementations of driven port interfaces
// for testing. Nothing is persisted.
package memory
