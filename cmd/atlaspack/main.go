package main

import "github.com/piwi3910/atlaspack/internal/cli"

// main is the entry point of the atlaspack CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cli.Execute()
}
