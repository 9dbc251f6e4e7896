package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/fairsoil/reviewbundle/internal/core/ports/driven"
)

// Ensure FileStore implements the interfaces.
var (
	_ driven.SourceReader = (*FileStore)(nil)
	_ driven.BundleWriter = (*FileStore)(nil)
)

// FileStore is an in-memory stand-in for the filesystem, for testing.
// It serves source text and records bundle writes.
type FileStore struct {
	mu       sync.RWMutex
	files    map[string]string
	writes   int
	writeErr error
}

// NewFileStore creates a new in-memory file store.
func NewFileStore() *FileStore {
	return &FileStore{
		files: make(map[string]string),
	}
}

// Put stores content at path.
func (s *FileStore) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = content
}

// Get returns the content at path and whether it exists.
func (s *FileStore) Get(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[path]
	return content, ok
}

// FailWrites makes every subsequent WriteText return err. nil clears it.
func (s *FileStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Writes returns the number of successful WriteText calls.
func (s *FileStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// ReadText returns the content stored at path.
func (s *FileStore) ReadText(_ context.Context, path string) (string, error) {
	content, ok := s.Get(path)
	if !ok {
		return "", fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return content, nil
}

// WriteText stores content at path, replacing any previous value.
func (s *FileStore) WriteText(_ context.Context, path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.files[path] = content
	s.writes++
	return nil
}
