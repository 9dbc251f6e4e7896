package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fairsoil/reviewbundle/internal/core/domain"
)

// mockBundleService implements driving.BundleService for testing.
type mockBundleService struct {
	presets []domain.Preset
	failOn  string
	built   []string
	roots   []string
}

func (m *mockBundleService) Build(_ context.Context, config domain.BundleConfig) (*domain.BuildResult, error) {
	return &domain.BuildResult{OutputPath: config.OutputPath, Sections: len(config.Sources)}, nil
}

func (m *mockBundleService) BuildPreset(_ context.Context, name, root string) (*domain.BuildResult, error) {
	if name == m.failOn {
		return nil, &domain.SourceReadError{Label: "README.md", Path: filepath.Join(root, "README.md"), Err: fmt.Errorf("boom")}
	}
	for _, p := range m.presets {
		if p.Name == name {
			m.built = append(m.built, name)
			m.roots = append(m.roots, root)
			return &domain.BuildResult{
				OutputPath: filepath.Join(root, p.Output),
				Sections:   len(p.Sources),
				Bytes:      123,
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPreset, name)
}

func (m *mockBundleService) Presets() []domain.Preset {
	return m.presets
}

func testPresets() []domain.Preset {
	return []domain.Preset{
		{
			Name:    "en",
			Output:  "docs/review_bundle_en.md",
			Sources: []domain.PresetSource{{Path: "README.md"}, {Path: "docs/spec_en.md"}},
		},
		{
			Name:    "ja",
			Output:  "docs/review_bundle_ja.md",
			Sources: []domain.PresetSource{{Path: "README_ja.md"}},
		},
	}
}

// setupCLITest installs a mock service rooted at /repo and returns it
// together with a cleanup func restoring the previous configuration.
func setupCLITest() (*mockBundleService, func()) {
	oldService, oldRoot := bundleService, resolveRoot
	mock := &mockBundleService{presets: testPresets()}
	SetConfig(Config{
		BundleService: mock,
		ResolveRoot:   func() (string, error) { return "/repo", nil },
	})
	return mock, func() {
		bundleService, resolveRoot = oldService, oldRoot
	}
}
