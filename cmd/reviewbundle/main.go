// Command reviewbundle builds the repository's review bundles.
//
//	reviewbundle build        # every preset
//	reviewbundle build ja     # one preset
//	reviewbundle list
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
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
