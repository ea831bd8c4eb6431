//go:build windows

package file

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
)

// clearHidden drops the hidden attribute so the file can be truncated.
// CreateFile refuses to overwrite a hidden file opened without it.
func clearHidden(path string) error {
	return setHidden(path, false)
}

// markHidden sets the hidden attribute on the settings file.
func markHidden(path string) error {
	return setHidden(path, true)
}

func setHidden(path string, hidden bool) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigSave, err)
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) && !hidden {
			return nil
		}
		return fmt.Errorf("%w: %w", domain.ErrConfigSave, err)
	}
	if hidden {
		attrs |= windows.FILE_ATTRIBUTE_HIDDEN
	} else {
		attrs &^= windows.FILE_ATTRIBUTE_HIDDEN
	}
	if err := windows.SetFileAttributes(p, attrs); err != nil {
		return fmt.Errorf("%w: set attributes: %w", domain.ErrConfigSave, err)
	}
	return nil
}
