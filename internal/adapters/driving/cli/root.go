package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/fairsoil/reviewbundle/internal/core/ports/driving"
	"github.com/fairsoil/reviewbundle/internal/logger"
)

// version is set at build time via -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Config holds the dependencies the commands run against.
type Config struct {
	BundleService driving.BundleService
	// ResolveRoot returns the repository root presets are resolved against.
	ResolveRoot func() (string, error)
}

var (
	bundleService driving.BundleService
	resolveRoot   func() (string, error)

	verbose bool
)

// SetConfig injects the services used by all commands.
func SetConfig(config Config) {
	bundleService = config.BundleService
	resolveRoot = config.ResolveRoot
}

var rootCmd = &cobra.Command{
	Use:   "reviewbundle",
	Short: "Bundle the review documents into single Markdown files",
	Long: `reviewbundle concatenates the repository's core documents into one
Markdown file per language so they can be handed to external reviewers.

Each bundle starts with a fixed header and contains one "## Source: <path>"
section per document, separated by horizontal rules. Bundles are fully
regenerated on every run.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func repoRoot() (string, error) {
	if resolveRoot == nil {
		return "", errors.New("repository root resolver not configured")
	}
	return resolveRoot()
}
