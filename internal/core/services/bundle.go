package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/fairsoil/reviewbundle/internal/core/domain"
	"github.com/fairsoil/reviewbundle/internal/core/ports/driven"
	"github.com/fairsoil/reviewbundle/internal/core/ports/driving"
	"github.com/fairsoil/reviewbundle/internal/logger"
)

// Ensure BundleService implements the interface.
var _ driving.BundleService = (*BundleService)(nil)

const (
	horizontalRule = "---"
	sectionPrefix  = "## Source: "
)

// BundleService concatenates source documents into a single review bundle.
type BundleService struct {
	reader  driven.SourceReader
	writer  driven.BundleWriter
	presets driven.PresetStore
}

// NewBundleService creates a new bundle service.
// presets may be nil when only Build is used.
func NewBundleService(
	reader driven.SourceReader,
	writer driven.BundleWriter,
	presets driven.PresetStore,
) *BundleService {
	return &BundleService{
		reader:  reader,
		writer:  writer,
		presets: presets,
	}
}

// Build reads every source, renders the bundle and writes it.
// All sources are read before the output is touched.
func (s *BundleService) Build(ctx context.Context, config domain.BundleConfig) (*domain.BuildResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger.Section("Build " + config.OutputPath)

	contents := make([]string, 0, len(config.Sources))
	for _, src := range config.Sources {
		text, err := s.reader.ReadText(ctx, src.Path)
		if err != nil {
			return nil, &domain.SourceReadError{Label: src.Label, Path: src.Path, Err: err}
		}
		logger.Debug("read %s (%d bytes)", src.Label, len(text))
		contents = append(contents, text)
	}

	bundle := Render(config, contents)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.writer.WriteText(ctx, config.OutputPath, bundle); err != nil {
		return nil, &domain.OutputWriteError{Path: config.OutputPath, Err: err}
	}
	logger.Info("wrote %s (%d sections, %d bytes)", config.OutputPath, len(config.Sources), len(bundle))

	return &domain.BuildResult{
		OutputPath: config.OutputPath,
		Sections:   len(config.Sources),
		Bytes:      len(bundle),
	}, nil
}

// BuildPreset resolves the named preset against root and builds it.
func (s *BundleService) BuildPreset(ctx context.Context, name, root string) (*domain.BuildResult, error) {
	if s.presets == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPreset, name)
	}
	preset, err := s.presets.Get(name)
	if err != nil {
		return nil, err
	}
	logger.Debug("preset %s resolved against %s", name, root)
	return s.Build(ctx, preset.Resolve(root))
}

// Presets lists the available presets.
func (s *BundleService) Presets() []domain.Preset {
	if s.presets == nil {
		return nil
	}
	return s.presets.List()
}

// Render produces the bundle text. contents[i] is the text of config.Sources[i].
//
// Layout: header, a rule, then per source a "## Source: <label>" marker,
// the trimmed content and a closing rule. The result ends in exactly one newline.
func Render(config domain.BundleConfig, contents []string) string {
	var b strings.Builder
	b.WriteString(config.Header)
	b.WriteString("\n" + horizontalRule + "\n")
	for i, src := range config.Sources {
		b.WriteString("\n" + sectionPrefix + src.Label + "\n\n")
		b.WriteString(trimTrailingSpace(contents[i]))
		b.WriteString("\n\n" + horizontalRule + "\n")
	}
	return trimTrailingSpace(b.String()) + "\n"
}

func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
