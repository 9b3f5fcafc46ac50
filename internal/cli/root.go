// Package cli implements the atlaspack command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "atlaspack",
	Short: "Pack sprites into texture atlas pages",
	Long: `atlaspack packs rectangular sprites into texture atlas pages using a
maximal-rectangles packer with a binary search over page sizes. It imports
sprite lists from CSV, Excel, or image directories, and exports composed page
images, a JSON atlas descriptor, and PDF/DXF layout reports.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
