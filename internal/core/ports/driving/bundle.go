package driving

import (
	"context"

	"github.com/fairsoil/reviewbundle/internal/core/domain"
)

// BundleService builds review bundles.
type BundleService interface {
	// Build reads every source in config, renders the bundle and writes it
	// to config.OutputPath. Nothing is written if any source fails to read.
	Build(ctx context.Context, config domain.BundleConfig) (*domain.BuildResult, error)

	// BuildPreset resolves the named preset against root and builds it.
	BuildPreset(ctx context.Context, name, root string) (*domain.BuildResult, error)

	// Presets lists the available presets.
	Presets() []domain.Preset
}
