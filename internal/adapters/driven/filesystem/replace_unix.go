//go:build !windows

package filesystem

import "os"

// replaceFile renames tmpPath over dest; atomic on POSIX filesystems.
func replaceFile(tmpPath, dest string) error {
	return os.Rename(tmpPath, dest)
}
