package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SourceEntry is one document included in a bundle.
// Label is printed in the section marker; Path is where the text is read from.
type SourceEntry struct {
	Label string
	Path  string
}

// BundleConfig describes a single bundle build.
// Sources are emitted in the order given.
type BundleConfig struct {
	Header     string
	Sources    []SourceEntry
	OutputPath string
}

// Validate checks the config has everything a build needs.
// An empty source list is valid and yields a header-only bundle.
func (c BundleConfig) Validate() error {
	if strings.TrimSpace(c.Header) == "" {
		return fmt.Errorf("%w: header is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidInput)
	}
	for i, src := range c.Sources {
		if src.Label == "" {
			return fmt.Errorf("%w: source %d has no label", ErrInvalidInput, i)
		}
		if src.Path == "" {
			return fmt.Errorf("%w: source %q has no path", ErrInvalidInput, src.Label)
		}
	}
	return nil
}

// BuildResult summarises a completed build.
type BuildResult struct {
	OutputPath string
	Sections   int
	Bytes      int
}

// PresetSource is a repository-relative source document.
// The relative path doubles as the section label.
type PresetSource struct {
	Path string `toml:"path"`
}

// Preset is a named, repository-relative bundle definition.
type Preset struct {
	Name    string         `toml:"name"`
	Header  string         `toml:"header"`
	Output  string         `toml:"output"`
	Sources []PresetSource `toml:"sources"`
}

// Resolve anchors the preset at root and returns the concrete build config.
func (p Preset) Resolve(root string) BundleConfig {
	sources := make([]SourceEntry, 0, len(p.Sources))
	for _, src := range p.Sources {
		sources = append(sources, SourceEntry{
			Label: src.Path,
			Path:  filepath.Join(root, filepath.FromSlash(src.Path)),
		})
	}
	return BundleConfig{
		Header:     p.Header,
		Sources:    sources,
		OutputPath: filepath.Join(root, filepath.FromSlash(p.Output)),
	}
}
