package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bundle presets and their sources",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if bundleService == nil {
		return errors.New("bundle service not configured")
	}

	presets := bundleService.Presets()
	if len(presets) == 0 {
		cmd.Println("No presets configured.")
		return nil
	}

	for i, p := range presets {
		if i > 0 {
			cmd.Println()
		}
		cmd.Printf("%s -> %s\n", titleStyle.Render(p.Name), p.Output)
		for j, src := range p.Sources {
			cmd.Printf("  %d. %s\n", j+1, src.Path)
		}
	}
	return nil
}
