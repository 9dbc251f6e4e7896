package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/fairsoil/reviewbundle/internal/logger"
)

// NewPresetCommand returns a zero-argument command that builds one preset.
// It backs the single-purpose review-bundle-<lang> binaries.
func NewPresetCommand(name string) *cobra.Command {
	var presetVerbose bool
	cmd := &cobra.Command{
		Use:          "review-bundle-" + name,
		Short:        "Build the " + name + " review bundle",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetVerbose(presetVerbose)
			if bundleService == nil {
				return errors.New("bundle service not configured")
			}
			return buildPresets(cmd, []string{name})
		},
	}
	cmd.Flags().BoolVarP(&presetVerbose, "verbose", "v", false, "print progress to stderr")
	return cmd
}

// ExecutePreset runs the single-preset command for name.
func ExecutePreset(name string) error {
	return NewPresetCommand(name).Execute()
}
