// Command review-bundle-en writes docs/review_bundle_en.md.
package main

import (
	"fmt"
	"os"

	"github.com/fairsoil/reviewbundle/internal/adapters/driving/cli"
	"github.com/fairsoil/reviewbundle/internal/app"
)

func main() {
	if err := app.Configure(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := cli.ExecutePreset("en"); err != nil {
		os.Exit(1)
	}
}
