package file

import (
	"bytes"
	_ "embed"
	"fmt"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/fairsoil/reviewbundle/internal/core/domain"
	"github.com/fairsoil/reviewbundle/internal/core/ports/driven"
)

// Ensure PresetStore implements the interface.
var _ driven.PresetStore = (*PresetStore)(nil)

//go:embed presets.toml
var defaultPresets []byte

// catalogue is the on-disk shape of presets.toml.
type catalogue struct {
	Presets []domain.Preset `toml:"presets"`
}

// PresetStore is a read-only, TOML-backed catalogue of bundle presets.
type PresetStore struct {
	presets []domain.Preset
}

// NewPresetStore loads the catalogue compiled into the binary.
func NewPresetStore() (*PresetStore, error) {
	return ParsePresets(defaultPresets)
}

// ParsePresets decodes a TOML catalogue. Unknown keys are rejected.
func ParsePresets(data []byte) (*PresetStore, error) {
	var cat catalogue
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	seen := make(map[string]bool, len(cat.Presets))
	for i, p := range cat.Presets {
		if err := validatePreset(p); err != nil {
			return nil, fmt.Errorf("preset %d: %w", i, err)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate preset %q", domain.ErrInvalidInput, p.Name)
		}
		seen[p.Name] = true
	}

	return &PresetStore{presets: cat.Presets}, nil
}

func validatePreset(p domain.Preset) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(p.Header) == "" {
		return fmt.Errorf("%w: %s: header is empty", domain.ErrInvalidInput, p.Name)
	}
	if err := validateRelPath(p.Output); err != nil {
		return fmt.Errorf("%s: output: %w", p.Name, err)
	}
	for _, src := range p.Sources {
		if err := validateRelPath(src.Path); err != nil {
			return fmt.Errorf("%s: source: %w", p.Name, err)
		}
	}
	return nil
}

// validateRelPath requires a slash-separated path that stays inside the root.
func validateRelPath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: path is empty", domain.ErrInvalidInput)
	}
	if path.IsAbs(p) || strings.Contains(p, "\\") {
		return fmt.Errorf("%w: %q must be a relative slash path", domain.ErrInvalidInput, p)
	}
	if clean := path.Clean(p); clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %q escapes the repository root", domain.ErrInvalidInput, p)
	}
	return nil
}

// List returns all presets in catalogue order.
func (s *PresetStore) List() []domain.Preset {
	out := make([]domain.Preset, len(s.presets))
	copy(out, s.presets)
	return out
}

// Get returns the named preset.
func (s *PresetStore) Get(name string) (domain.Preset, error) {
	for _, p := range s.presets {
		if p.Name == name {
			return p, nil
		}
	}
	return domain.Preset{}, fmt.Errorf("%w: %s", domain.ErrUnknownPreset, name)
}

// Names returns preset names in catalogue order.
func (s *PresetStore) Names() []string {
	names := make([]string, 0, len(s.presets))
	for _, p := range s.presets {
		names = append(names, p.Name)
	}
	return names
}
