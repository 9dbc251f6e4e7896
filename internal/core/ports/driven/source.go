package driven

import "context"

// SourceReader loads the text of a bundle source document.
type SourceReader interface {
	// ReadText returns the full UTF-8 text stored at path.
	// Returns an error wrapping fs.ErrNotExist if the path does not exist.
	ReadText(ctx context.Context, path string) (string, error)
}
