// Package catalog loads the entries shown by the lazylist picker.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/chmouel/lazylist/internal/listview"
	devicons "github.com/epilande/go-devicons"
	"gopkg.in/yaml.v3"
)

// Entry is one pickable row.
type Entry struct {
	ID          string
	Label       string
	Description string
	Icon        string
	Selectable  bool
	Disabled    bool
}

// Title returns the label, falling back to the id.
func (e Entry) Title() string {
	if e.Label != "" {
		return e.Label
	}
	return e.ID
}

// Catalog holds the two groups the picker renders.
type Catalog struct {
	Path        string
	Recommended []Entry
	Items       []Entry
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty catalog path")
	}
	// #nosec G304 -- the path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cat.Path = path
	return cat, nil
}

// Parse decodes catalog YAML. Entries may be plain strings or maps with id,
// label, description, selectable and disabled keys.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	recommended, err := parseEntries(raw["recommended"])
	if err != nil {
		return nil, fmt.Errorf("recommended: %w", err)
	}
	items, err := parseEntries(raw["items"])
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	return &Catalog{Recommended: recommended, Items: items}, nil
}

func parseEntries(value any) ([]Entry, error) {
	if value == nil {
		return nil, nil
	}
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", value)
	}

	entries := make([]Entry, 0, len(list))
	for i, item := range list {
		switch v := item.(type) {
		case string:
			text := strings.TrimSpace(v)
			if text == "" {
				continue
			}
			entries = append(entries, Entry{ID: text, Label: text, Selectable: true})
		case map[string]any:
			entry := Entry{Selectable: true}
			if id, ok := v["id"]; ok && id != nil {
				entry.ID = strings.TrimSpace(fmt.Sprintf("%v", id))
			}
			if label, ok := v["label"].(string); ok {
				entry.Label = strings.TrimSpace(label)
			}
			if desc, ok := v["description"].(string); ok {
				entry.Description = strings.TrimSpace(desc)
			}
			if icon, ok := v["icon"].(string); ok {
				entry.Icon = strings.TrimSpace(icon)
			}
			entry.Selectable = coerceBool(v["selectable"], true)
			entry.Disabled = coerceBool(v["disabled"], false)
			if entry.ID == "" {
				entry.ID = entry.Label
			}
			if entry.ID == "" {
				return nil, fmt.Errorf("entry %d has neither id nor label", i)
			}
			entries = append(entries, entry)
		default:
			return nil, fmt.Errorf("entry %d: unsupported type %T", i, item)
		}
	}
	return entries, nil
}

func coerceBool(value any, defaultVal bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

type iconFileInfo struct {
	name  string
	isDir bool
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode {
	if i.isDir {
		return os.ModeDir | 0o755
	}
	return 0
}

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return i.isDir }

func (i iconFileInfo) Sys() any { return nil }

// IconFor returns the Nerd Font icon for a file name.
func IconFor(name string, isDir bool) string {
	if name == "" {
		return ""
	}
	return devicons.IconForInfo(iconFileInfo{name: name, isDir: isDir}).Icon
}

// FromDir builds a catalog from a directory listing: subdirectories are
// recommended, files are the remaining items. Hidden entries are skipped.
func FromDir(dir string, showIcons bool) (*Catalog, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	cat := &Catalog{Path: dir}
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		entry := Entry{
			ID:         filepath.Join(dir, name),
			Label:      name,
			Selectable: true,
		}
		if showIcons {
			entry.Icon = IconFor(name, de.IsDir())
		}
		if de.IsDir() {
			entry.Label += string(filepath.Separator)
			cat.Recommended = append(cat.Recommended, entry)
			continue
		}
		if info, err := de.Info(); err == nil {
			entry.Description = humanSize(info.Size())
		}
		cat.Items = append(cat.Items, entry)
	}
	return cat, nil
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Sample returns a demo catalog with n recommended entries and n*4 products.
func Sample(n int) *Catalog {
	if n <= 0 {
		n = 8
	}
	cat := &Catalog{}
	for i := 1; i <= n; i++ {
		cat.Recommended = append(cat.Recommended, Entry{
			ID:          fmt.Sprintf("recommended-%d", i),
			Label:       fmt.Sprintf("Recommended %d", i),
			Description: "Picked for you",
			Selectable:  true,
		})
	}
	for i := 1; i <= n*4; i++ {
		cat.Items = append(cat.Items, Entry{
			ID:         fmt.Sprintf("product-%d", i),
			Label:      fmt.Sprintf("Product %d", i),
			Selectable: i%7 != 0,
		})
	}
	return cat
}

// Duplicates returns ids that appear more than once across both groups.
func (c *Catalog) Duplicates() []string {
	seen := make(map[string]int)
	for _, e := range slices.Concat(c.Recommended, c.Items) {
		seen[e.ID]++
	}
	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Strings(dups)
	return dups
}

// DisabledIDs returns the ids flagged disabled in the file.
func (c *Catalog) DisabledIDs() []listview.ItemID {
	var out []listview.ItemID
	for _, e := range slices.Concat(c.Recommended, c.Items) {
		if e.Disabled {
			out = append(out, listview.ItemID(e.ID))
		}
	}
	return out
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	return len(c.Recommended) + len(c.Items)
}

// Source projects entries into a list data source. The entry label drives
// type-ahead.
func Source(name string, entries []Entry) listview.DataSource {
	return listview.NewDataSource(name, entries, listview.Options[Entry]{
		IDFunc:            func(e Entry) listview.ItemID { return listview.ItemID(e.ID) },
		TypeAheadTextFunc: func(e Entry) string { return e.Title() },
		IsSelectable:      func(e Entry) bool { return e.Selectable },
	})
}
