package domain

import "strings"

// MaxRecentFiles is the capacity of the recent files list.
const MaxRecentFiles = 10

// RecentFilesDelimiter separates paths in the serialized list.
const RecentFilesDelimiter = ";"

// RecentFiles is a bounded, de-duplicated list of file paths,
// most recently used first.
//
// The zero value is an empty list ready to use.
type RecentFiles struct {
	paths []string
}

// NewRecentFiles creates a list from paths given most recent first.
// Empty entries and duplicates are dropped and the result is capped.
func NewRecentFiles(paths ...string) *RecentFiles {
	r := &RecentFiles{}
	for i := len(paths) - 1; i >= 0; i-- {
		if paths[i] != "" {
			r.Record(paths[i])
		}
	}
	return r
}

// ParseRecentFiles decodes a list written by Serialize.
// An empty or malformed value yields an empty list.
func ParseRecentFiles(s string) *RecentFiles {
	if s == "" {
		return &RecentFiles{}
	}
	return NewRecentFiles(strings.Split(s, RecentFilesDelimiter)...)
}

// Record moves path to the front, inserting it if absent.
// The oldest entry is evicted when the list grows past MaxRecentFiles.
// Returns false if path is empty.
func (r *RecentFiles) Record(path string) bool {
	if path == "" {
		return false
	}

	if i := r.indexOf(path); i >= 0 {
		// Shift the entries ahead of it down one slot
		copy(r.paths[1:i+1], r.paths[:i])
		r.paths[0] = path
		return true
	}

	r.paths = append([]string{path}, r.paths...)
	if len(r.paths) > MaxRecentFiles {
		r.paths = r.paths[:MaxRecentFiles]
	}
	return true
}

// Remove drops path from the list. Returns true if it was present.
func (r *RecentFiles) Remove(path string) bool {
	i := r.indexOf(path)
	if i < 0 {
		return false
	}
	r.paths = append(r.paths[:i], r.paths[i+1:]...)
	return true
}

// Clear empties the list.
func (r *RecentFiles) Clear() {
	r.paths = nil
}

// Entries returns a copy of the paths, most recent first, or nil if empty.
func (r *RecentFiles) Entries() []string {
	if len(r.paths) == 0 {
		return nil
	}
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Contains returns true if path is in the list.
func (r *RecentFiles) Contains(path string) bool {
	return r.indexOf(path) >= 0
}

// Len returns the number of entries.
func (r *RecentFiles) Len() int {
	return len(r.paths)
}

// Serialize encodes the list as a single delimited string.
func (r *RecentFiles) Serialize() string {
	return strings.Join(r.paths, RecentFilesDelimiter)
}

func (r *RecentFiles) indexOf(path string) int {
	for i, p := range r.paths {
		if p == path {
			return i
		}
	}
	return -1
}
