package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

type parseResult struct {
	ConfigPath  string
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

func parseArgs(args []string) (parseResult, error) {
	fs := flag.NewFlagSet("fixlab", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configPath := fs.String("config", "fixlab.yaml", "Path to the config file")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: fixlab [flags]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Fixlab runs interactive drag-and-drop puzzle tasks and records participant behavior.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("positional args are not supported\n\n%s", usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	return parseResult{ConfigPath: *configPath}, nil
}
