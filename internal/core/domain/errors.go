package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownPreset indicates no bundle preset has the requested name.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrNotUTF8 indicates a source document is not valid UTF-8 text.
	ErrNotUTF8 = errors.New("not valid UTF-8")
)

// SourceReadError reports a configured source that could not be read.
type SourceReadError struct {
	Label string
	Path  string
	Err   error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read source %s (%s): %v", e.Label, e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// OutputWriteError reports a bundle that could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("write bundle %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
