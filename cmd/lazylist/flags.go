// Package main provides CLI flag definitions for lazylist.
package main

import (
	appiCli "github.com/urfave/cli/v3"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []appiCli.Flag {
	return []appiCli.Flag{
		&appiCli.StringFlag{
			Name:    "catalog",
			Aliases: []string{"f"},
			Usage:   "YAML catalog with recommended and items lists",
		},
		&appiCli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Pick files from a directory (default: current directory)",
		},
		&appiCli.BoolFlag{
			Name:  "demo",
			Usage: "Show generated sample entries",
		},
		&appiCli.StringFlag{
			Name:    "selection-type",
			Aliases: []string{"s"},
			Usage:   "Selection type: none, single or multiple",
		},
		&appiCli.StringFlag{
			Name:    "orientation",
			Aliases: []string{"o"},
			Usage:   "Navigation keys: vertical (up/down) or horizontal (left/right)",
		},
		&appiCli.BoolFlag{
			Name:  "no-cyclic",
			Usage: "Stop at the ends of the list instead of wrapping",
		},
		&appiCli.BoolFlag{
			Name:  "no-type-ahead",
			Usage: "Send typed characters to the text field instead of searching",
		},
		&appiCli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&appiCli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&appiCli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=ll.key=value",
		},
		&appiCli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&appiCli.StringFlag{
			Name:  "output-selection",
			Usage: "Write the selected ids to a file instead of stdout",
		},
		&appiCli.BoolFlag{
			Name:  "print-query",
			Usage: "Print the text field content before the selected ids",
		},
	}
}
