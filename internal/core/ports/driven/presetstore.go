package driven

import "github.com/fairsoil/reviewbundle/internal/core/domain"

// PresetStore provides the catalogue of named bundle presets.
type PresetStore interface {
	// List returns all presets in catalogue order.
	List() []domain.Preset

	// Get returns the preset with the given name.
	// Returns domain.ErrUnknownPreset if none matches.
	Get(name string) (domain.Preset, error)
}
