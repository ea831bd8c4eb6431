package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent recoverable session failures.
// None of them is fatal: the editor remains usable after each.
var (
	// ErrFileRead indicates a document could not be loaded.
	ErrFileRead = errors.New("file read failed")

	// ErrFileWrite indicates a document could not be written.
	ErrFileWrite = errors.New("file write failed")

	// ErrConfigLoad indicates the configuration file could not be read or parsed.
	// Defaults are used instead.
	ErrConfigLoad = errors.New("config load failed")

	// ErrConfigVersionMismatch indicates the configuration file was written
	// by a newer, incompatible version of the program.
	ErrConfigVersionMismatch = errors.New("config version mismatch")

	// ErrConfigSave indicates the configuration file could not be written.
	ErrConfigSave = errors.New("config save failed")

	// ErrNoDocumentPath indicates a save was requested for an untitled
	// document and no destination could be obtained.
	ErrNoDocumentPath = errors.New("document has no path")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// FileError describes a failed document read or write.
// It matches both its kind (ErrFileRead or ErrFileWrite) and the
// underlying cause with errors.Is.
type FileError struct {
	// Kind is ErrFileRead or ErrFileWrite.
	Kind error

	// Path is the file that was being accessed.
	Path string

	// Err is the underlying I/O error.
	Err error
}

// NewFileReadError wraps err as a read failure for path.
func NewFileReadError(path string, err error) *FileError {
	return &FileError{Kind: ErrFileRead, Path: path, Err: err}
}

// NewFileWriteError wraps err as a write failure for path.
func NewFileWriteError(path string, err error) *FileError {
	return &FileError{Kind: ErrFileWrite, Path: path, Err: err}
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// VersionMismatchError reports a configuration file written by a newer
// schema than the running program understands.
type VersionMismatchError struct {
	Found   int
	Current int
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("config file reports version %d while this program uses %d; settings were not loaded",
		e.Found, e.Current)
}

// Is reports whether target is ErrConfigVersionMismatch.
func (e *VersionMismatchError) Is(target error) bool {
	return target == ErrConfigVersionMismatch
}
