package memory

import (
	"fmt"
	"sync"

	"github.com/fairsoil/reviewbundle/internal/core/domain"
	"github.com/fairsoil/reviewbundle/internal/core/ports/driven"
)

// Ensure PresetStore implements the interface.
var _ driven.PresetStore = (*PresetStore)(nil)

// PresetStore is an in-memory implementation of driven.PresetStore for testing.
type PresetStore struct {
	mu      sync.RWMutex
	presets []domain.Preset
}

// NewPresetStore creates a store holding presets in the given order.
func NewPresetStore(presets ...domain.Preset) *PresetStore {
	return &PresetStore{presets: presets}
}

// List returns all presets in insertion order.
func (s *PresetStore) List() []domain.Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Preset, len(s.presets))
	copy(out, s.presets)
	return out
}

// Get returns the named preset.
func (s *PresetStore) Get(name string) (domain.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.presets {
		if p.Name == name {
			return p, nil
		}
	}
	return domain.Preset{}, fmt.Errorf("%w: %s", domain.ErrUnknownPreset, name)
}
