// Package app wires the driven adapters into the core services and hands
// them to the CLI. Every entry point under cmd/ goes through Configure.
package app

import (
	"fmt"
	"os"

	"github.com/fairsoil/reviewbundle/internal/adapters/driven/config/file"
	"github.com/fairsoil/reviewbundle/internal/adapters/driven/filesystem"
	"github.com/fairsoil/reviewbundle/internal/adapters/driving/cli"
	"github.com/fairsoil/reviewbundle/internal/core/services"
)

// Configure builds the production service graph and installs it in the CLI.
func Configure() error {
	presets, err := file.NewPresetStore()
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	service := services.NewBundleService(
		filesystem.NewReader(),
		filesystem.NewWriter(0),
		presets,
	)

	cli.SetConfig(cli.Config{
		BundleService: service,
		ResolveRoot:   ResolveRoot,
	})
	return nil
}

// ResolveRoot locates the repository root from the working directory.
func ResolveRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filesystem.FindRoot(wd)
}
