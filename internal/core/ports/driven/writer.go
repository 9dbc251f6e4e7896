package driven

import "context"

// BundleWriter persists a rendered bundle.
type BundleWriter interface {
	// WriteText replaces the file at path with content, creating it if needed.
	// Implementations must leave any existing file untouched on failure.
	WriteText(ctx context.Context, path, content string) error
}
