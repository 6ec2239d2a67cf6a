// Package main is the entry point for the lazylist picker.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazylist/internal/app"
	"github.com/chmouel/lazylist/internal/buildinfo"
	"github.com/chmouel/lazylist/internal/catalog"
	"github.com/chmouel/lazylist/internal/config"
	"github.com/chmouel/lazylist/internal/listview"
	"github.com/chmouel/lazylist/internal/log"
	"github.com/chmouel/lazylist/internal/theme"
	appiCli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

const demoSize = 8

var writeOutputSelectionFunc = writeOutputSelection

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	buildinfo.Enrich()

	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:                  "lazylist",
		Usage:                 "Pick one or more entries from a list in the terminal",
		Version:               buildinfo.Version(),
		EnableShellCompletion: true,
		Flags:                 globalFlags(),
		Commands: []*appiCli.Command{
			themesCommand(),
			versionCommand(),
			checkCommand(),
		},
		Action: runTUI,
	}
}

// runTUI is the default action that launches the picker when no subcommand
// is given.
func runTUI(_ context.Context, cmd *appiCli.Command) error {
	defer func() { _ = log.Close() }()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupDebugLog(cmd.String("debug-log"), cfg)

	cat, err := loadCatalog(cmd, cfg)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec
		// stdout is captured by the caller: draw on stderr instead.
		if !term.IsTerminal(int(os.Stderr.Fd())) { //nolint:gosec
			return errors.New("lazylist needs a terminal on stdout or stderr")
		}
		opts = append(opts, tea.WithOutput(os.Stderr))
	}

	model := app.NewModel(cfg, cat)
	_, err = tea.NewProgram(model, opts...).Run()
	model.Close()
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}

	res := model.Result()
	if res == nil {
		return nil
	}
	lines := formatResult(res, cmd.Bool("print-query"))

	if outputSelection := cmd.String("output-selection"); outputSelection != "" {
		return writeOutputSelectionFunc(outputSelection, lines)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// loadConfig layers the config file, the dedicated flags and the -C
// overrides, in increasing precedence.
func loadConfig(cmd *appiCli.Command) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if err := applyFlags(cfg, cmd); err != nil {
		return nil, err
	}
	if err := config.ApplyCLIOverrides(cfg, cmd.StringSlice("config")); err != nil {
		return nil, fmt.Errorf("error applying config overrides: %w", err)
	}
	for _, w := range cfg.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	cfg.ResolveTheme()
	return cfg, nil
}

func applyFlags(cfg *config.AppConfig, cmd *appiCli.Command) error {
	if name := cmd.String("selection-type"); name != "" {
		st, err := listview.ParseSelectionType(name)
		if err != nil {
			return withSuggestion(err, name, listview.SelectionTypeNames())
		}
		cfg.SelectionType = st
	}
	if name := cmd.String("orientation"); name != "" {
		o, err := listview.ParseOrientation(name)
		if err != nil {
			return withSuggestion(err, name, listview.OrientationNames())
		}
		cfg.Orientation = o
	}
	if cmd.Bool("no-cyclic") {
		cfg.Cyclic = false
	}
	if cmd.Bool("no-type-ahead") {
		cfg.TypeAhead = false
	}
	return applyThemeConfig(cfg, cmd.String("theme"))
}

// applyThemeConfig applies theme configuration from command line flag.
func applyThemeConfig(cfg *config.AppConfig, themeName string) error {
	if themeName == "" {
		return nil
	}
	normalized := config.NormalizeThemeName(themeName)
	if normalized == "" {
		return withSuggestion(fmt.Errorf("unknown theme %q", themeName), themeName, theme.AvailableThemes())
	}
	cfg.Theme = normalized
	return nil
}

func withSuggestion(err error, input string, candidates []string) error {
	if s, ok := config.Suggest(input, candidates); ok {
		return fmt.Errorf("%w, did you mean %q?", err, s)
	}
	return err
}

// setupDebugLog opens the debug log from the flag, then from the config. With
// neither, buffered lines are discarded.
func setupDebugLog(flagPath string, cfg *config.AppConfig) {
	path := flagPath
	if path == "" {
		path = cfg.DebugLog
	}
	if path == "" {
		_ = log.SetFile("")
		return
	}
	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	cfg.DebugLog = path
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

func loadCatalog(cmd *appiCli.Command, cfg *config.AppConfig) (*catalog.Catalog, error) {
	path, dir := cmd.String("catalog"), cmd.String("dir")
	if path != "" && dir != "" {
		return nil, errors.New("--catalog and --dir are mutually exclusive")
	}

	switch {
	case cmd.Bool("demo"):
		return catalog.Sample(demoSize), nil
	case path != "":
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, fmt.Errorf("error expanding catalog path: %w", err)
		}
		return catalog.Load(expanded)
	}

	if dir == "" {
		dir = "."
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return nil, fmt.Errorf("error expanding dir: %w", err)
	}
	return catalog.FromDir(expanded, cfg.ShowIcons)
}

// formatResult returns the output lines: the query first when requested,
// then one id per line.
func formatResult(res *app.Result, printQuery bool) []string {
	var lines []string
	if printQuery {
		lines = append(lines, res.Query)
	}
	return append(lines, res.IDs...)
}

func writeOutputSelection(outputSelection string, lines []string) error {
	expanded, err := config.ExpandPath(outputSelection)
	if err != nil {
		return fmt.Errorf("error expanding output-selection: %w", err)
	}
	const defaultDirPerms = 0o750
	if err := os.MkdirAll(filepath.Dir(expanded), defaultDirPerms); err != nil {
		return fmt.Errorf("error creating output-selection dir: %w", err)
	}
	data := ""
	if len(lines) > 0 {
		data = strings.Join(lines, "\n") + "\n"
	}
	const defaultFilePerms = 0o600
	if err := os.WriteFile(expanded, []byte(data), defaultFilePerms); err != nil {
		return fmt.Errorf("error writing output-selection: %w", err)
	}
	return nil
}
