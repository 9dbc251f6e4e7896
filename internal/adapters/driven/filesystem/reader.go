package filesystem

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/fairsoil/reviewbundle/internal/core/domain"
	"github.com/fairsoil/reviewbundle/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.SourceReader = (*Reader)(nil)

// Reader reads source documents from disk.
type Reader struct{}

// NewReader creates a new filesystem reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadText returns the file's content. Invalid UTF-8 is rejected.
func (r *Reader) ReadText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, domain.ErrNotUTF8)
	}
	return string(data), nil
}
