// Package config loads the lazylist configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chmouel/lazylist/internal/listview"
	"github.com/chmouel/lazylist/internal/theme"
	"gopkg.in/yaml.v3"
)

// AppConfig defines the lazylist configuration options.
type AppConfig struct {
	Theme            string // Theme name: see AvailableThemes in internal/theme
	SelectionType    listview.SelectionType
	Orientation      listview.Orientation
	Cyclic           bool
	TypeAhead        bool
	TypeAheadTimeout time.Duration
	PageSize         int // Entries revealed by each "fetch more"
	InitialCount     int // Entries visible per group before fetching
	ShowIcons        bool
	WatchCatalog     bool
	DebugLog         string

	// Warnings collects values that were ignored while parsing.
	Warnings []string `yaml:"-"`
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		SelectionType:    listview.SelectionMultiple,
		Orientation:      listview.Vertical,
		Cyclic:           true,
		TypeAhead:        true,
		TypeAheadTimeout: listview.DefaultTypeAheadTimeout,
		PageSize:         3,
		InitialCount:     4,
		ShowIcons:        true,
		WatchCatalog:     true,
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return v
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

// coerceDuration accepts Go duration strings or a bare number of
// milliseconds.
func coerceDuration(value any, defaultVal time.Duration) time.Duration {
	switch v := value.(type) {
	case int:
		return time.Duration(v) * time.Millisecond
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if ms, err := strconv.Atoi(text); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
		if d, err := time.ParseDuration(text); err == nil {
			return d
		}
	}
	return defaultVal
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	applyConfig(cfg, data)
	return cfg
}

// applyConfig overlays data onto cfg. Keys that are absent leave cfg alone.
func applyConfig(cfg *AppConfig, data map[string]any) {
	for key := range data {
		if !isKnownKey(key) {
			cfg.warnf("unknown key %q%s", key, suggestionSuffix(key, KnownKeys()))
		}
	}

	if themeName, ok := data["theme"].(string); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		} else if strings.TrimSpace(themeName) != "" {
			cfg.warnf("unknown theme %q%s", themeName, suggestionSuffix(themeName, theme.AvailableThemes()))
		}
	}

	if raw, ok := data["selection_type"].(string); ok {
		if st, err := listview.ParseSelectionType(raw); err == nil {
			cfg.SelectionType = st
		} else {
			cfg.warnf("%v%s", err, suggestionSuffix(raw, listview.SelectionTypeNames()))
		}
	}

	if raw, ok := data["orientation"].(string); ok {
		if o, err := listview.ParseOrientation(raw); err == nil {
			cfg.Orientation = o
		} else {
			cfg.warnf("%v%s", err, suggestionSuffix(raw, listview.OrientationNames()))
		}
	}

	if debugLog, ok := data["debug_log"].(string); ok {
		debugLog = strings.TrimSpace(debugLog)
		if debugLog != "" {
			cfg.DebugLog = debugLog
		}
	}

	cfg.Cyclic = coerceBool(data["cyclic"], cfg.Cyclic)
	cfg.TypeAhead = coerceBool(data["type_ahead"], cfg.TypeAhead)
	cfg.TypeAheadTimeout = coerceDuration(data["type_ahead_timeout"], cfg.TypeAheadTimeout)
	cfg.PageSize = coerceInt(data["page_size"], cfg.PageSize)
	cfg.InitialCount = coerceInt(data["initial_count"], cfg.InitialCount)
	cfg.ShowIcons = coerceBool(data["show_icons"], cfg.ShowIcons)
	cfg.WatchCatalog = coerceBool(data["watch_catalog"], cfg.WatchCatalog)

	if cfg.TypeAheadTimeout <= 0 {
		cfg.TypeAheadTimeout = listview.DefaultTypeAheadTimeout
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 1
	}
	if cfg.InitialCount < 0 {
		cfg.InitialCount = 0
	}
}

func (c *AppConfig) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// ConfigDir returns the directory configuration files must live in.
func ConfigDir() string {
	return filepath.Clean(filepath.Join(getConfigDir(), "lazylist"))
}

// LoadConfig reads the application configuration from a YAML file.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := ConfigDir()

	var paths []string

	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !isPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	var cfg *AppConfig

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is constrained to the config directory after validation
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config: %w", err)
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
		}

		cfg = parseConfig(yamlData)
		break
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}
	return cfg, nil
}

// ResolveTheme fills in the theme from the terminal background when none was
// configured.
func (c *AppConfig) ResolveTheme() {
	if c.Theme == "" {
		c.Theme = theme.Detect()
	}
}

// ExpandPath expands a leading ~ and environment variables in path.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if theme.Exists(name) {
		return name
	}
	return ""
}
