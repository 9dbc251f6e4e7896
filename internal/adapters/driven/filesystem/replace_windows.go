//go:build windows

package filesystem

import (
	"errors"
	"io/fs"
	"os"
)

// replaceFile renames tmpPath over dest. os.Rename on Windows fails if dest
// is held open by another process, so remove and retry once.
func replaceFile(tmpPath, dest string) error {
	err := os.Rename(tmpPath, dest)
	if err == nil {
		return nil
	}
	if rmErr := os.Remove(dest); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		return err
	}
	return os.Rename(tmpPath, dest)
}
