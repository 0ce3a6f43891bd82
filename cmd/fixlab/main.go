package main

import (
	"fmt"
	"os"

	"github.com/mehtalab/fixlab/internal/cli"
	"github.com/mehtalab/fixlab/internal/config"
	"github.com/mehtalab/fixlab/internal/tui"
	"github.com/mehtalab/fixlab/internal/version"
)

func main() {
	// Bare invocation and flag-only invocations launch the TUI directly;
	// anything with a subcommand routes through the CLI.
	if len(os.Args) == 1 || (len(os.Args) > 1 && os.Args[1][0] == '-') {
		res, err := parseArgs(os.Args[1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if res.ShowHelp {
			fmt.Print(res.HelpText)
			return
		}
		if res.ShowVersion {
			fmt.Printf("fixlab %s (%s, built %s)\n", version.Version, version.CommitSHA, version.BuildDate)
			return
		}

		cfg, err := config.Load(res.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := tui.Run(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}
