// Package main provides CLI command definitions for lazylist.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/chmouel/lazylist/internal/buildinfo"
	"github.com/chmouel/lazylist/internal/catalog"
	"github.com/chmouel/lazylist/internal/config"
	"github.com/chmouel/lazylist/internal/theme"
	appiCli "github.com/urfave/cli/v3"
)

func themesCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:  "themes",
		Usage: "List available UI themes",
		Action: func(_ context.Context, _ *appiCli.Command) error {
			printThemes()
			return nil
		},
	}
}

// printThemes prints available themes with their background variant.
func printThemes() {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "Available themes:")
	for _, name := range theme.AvailableThemes() {
		variant := "dark"
		if theme.IsLight(name) {
			variant = "light"
		}
		_, _ = fmt.Fprintf(w, "  %s\t%s\n", name, variant)
	}
	_ = w.Flush()
}

func versionCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(_ context.Context, _ *appiCli.Command) error {
			fmt.Println(buildinfo.Summary())
			return nil
		},
	}
}

func checkCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:      "check",
		Usage:     "Validate a catalog file",
		ArgsUsage: "FILE",
		Action:    handleCheckAction,
	}
}

// handleCheckAction loads the catalog and fails on duplicate ids, since only
// the first occurrence of an id can ever be reached.
func handleCheckAction(_ context.Context, cmd *appiCli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errors.New("check requires a catalog file")
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("error expanding catalog path: %w", err)
	}
	cat, err := catalog.Load(expanded)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d recommended, %d items, %d disabled\n",
		path, len(cat.Recommended), len(cat.Items), len(cat.DisabledIDs()))
	if dups := cat.Duplicates(); len(dups) > 0 {
		return fmt.Errorf("duplicate ids: %s", strings.Join(dups, ", "))
	}
	return nil
}
