package filesystem

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/fairsoil/reviewbundle/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.BundleWriter = (*Writer)(nil)

const defaultFileMode os.FileMode = 0o644

// Writer writes bundles to disk.
// Content is staged in a temp file in the destination directory and renamed
// into place, so readers never see a half-written bundle.
type Writer struct {
	perm os.FileMode
}

// NewWriter creates a writer. A zero perm means 0644.
func NewWriter(perm os.FileMode) *Writer {
	if perm == 0 {
		perm = defaultFileMode
	}
	return &Writer{perm: perm}
}

// WriteText atomically replaces path with content.
// The parent directory must already exist.
func (w *Writer) WriteText(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bundle-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	bw := bufio.NewWriter(tmp)
	if _, err := bw.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, w.perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := replaceFile(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
