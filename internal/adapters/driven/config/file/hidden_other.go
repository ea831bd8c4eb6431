//go:build !windows

package file

// The leading dot in the file name hides it; no attributes to manage.

func clearHidden(string) error {
	return nil
}

func markHidden(string) error {
	return nil
}
