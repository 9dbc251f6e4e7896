package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fairsoil/reviewbundle/internal/core/domain"
)

var buildCmd = &cobra.Command{
	Use:   "build [preset...]",
	Short: "Build review bundles",
	Long: `Builds the named bundle presets, or every preset when none is given.

Presets are built in order; the first failure stops the run. A failed build
never leaves a partially written bundle behind.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	if bundleService == nil {
		return errors.New("bundle service not configured")
	}

	names := args
	if len(names) == 0 {
		for _, p := range bundleService.Presets() {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return errors.New("no presets configured")
	}

	return buildPresets(cmd, names)
}

// buildPresets builds each named preset against the repository root.
func buildPresets(cmd *cobra.Command, names []string) error {
	root, err := repoRoot()
	if err != nil {
		return fmt.Errorf("failed to locate repository root: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for _, name := range names {
		result, err := bundleService.BuildPreset(ctx, name, root)
		if err != nil {
			return fmt.Errorf("build %s: %w", name, err)
		}
		printResult(cmd, root, result)
	}
	return nil
}

func printResult(cmd *cobra.Command, root string, result *domain.BuildResult) {
	shown := result.OutputPath
	if rel, err := filepath.Rel(root, result.OutputPath); err == nil {
		shown = filepath.ToSlash(rel)
	}
	cmd.Printf("%s wrote %s %s\n",
		successMark.Render("✓"),
		shown,
		mutedStyle.Render(fmt.Sprintf("(%d sections, %d bytes)", result.Sections, result.Bytes)),
	)
}
