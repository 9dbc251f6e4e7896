package filesystem

import (
	"os"
	"path/filepath"
)

// rootMarker identifies the repository root.
const rootMarker = ".git"

// FindRoot walks up from start to the first directory containing .git.
// If none is found, start itself (made absolute) is returned.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	dir := abs
	for {
		if _, err := os.Stat(filepath.Join(dir, rootMarker)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}
