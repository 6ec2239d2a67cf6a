package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// OverridePrefix is the namespace for -C key=value overrides.
const OverridePrefix = "ll."

var knownKeys = []string{
	"theme",
	"selection_type",
	"orientation",
	"cyclic",
	"type_ahead",
	"type_ahead_timeout",
	"page_size",
	"initial_count",
	"show_icons",
	"watch_catalog",
	"debug_log",
}

// KnownKeys returns the sorted list of recognised configuration keys.
func KnownKeys() []string {
	keys := append([]string(nil), knownKeys...)
	sort.Strings(keys)
	return keys
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}

// parseCLIConfigOverrides parses -C ll.key=value arguments into a map
// suitable for applyConfig.
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)
	keyCount := make(map[string]int)

	for _, override := range overrides {
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config override: %q, expected format: %skey=value", override, OverridePrefix)
		}

		fullKey := parts[0]
		value := parts[1]

		if !strings.HasPrefix(fullKey, OverridePrefix) {
			return nil, fmt.Errorf("config override key must start with %q: %q", OverridePrefix, fullKey)
		}

		key := strings.TrimPrefix(fullKey, OverridePrefix)
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}

		// Repeated keys collect into a list; the last value wins for scalars.
		keyCount[key]++
		switch keyCount[key] {
		case 1:
			result[key] = value
		case 2:
			result[key] = []any{result[key], value}
		default:
			result[key] = append(result[key].([]any), value)
		}
	}

	for key, value := range result {
		if list, ok := value.([]any); ok {
			result[key] = list[len(list)-1]
		}
	}

	return result, nil
}

// ApplyCLIOverrides overlays -C overrides on top of cfg.
func ApplyCLIOverrides(cfg *AppConfig, overrides []string) error {
	if len(overrides) == 0 {
		return nil
	}
	data, err := parseCLIConfigOverrides(overrides)
	if err != nil {
		return err
	}
	applyConfig(cfg, data)
	return nil
}

// Suggest returns the candidate closest to input, if it is close enough to be
// a plausible typo.
func Suggest(input string, candidates []string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}
	best, bestScore := "", -1
	for _, c := range candidates {
		score := levenshtein.ComputeDistance(input, c)
		if bestScore < 0 || score < bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < 0 || bestScore > max(2, len(input)/3) {
		return "", false
	}
	return best, true
}

func suggestionSuffix(input string, candidates []string) string {
	if s, ok := Suggest(input, candidates); ok {
		return fmt.Sprintf(", did you mean %q?", s)
	}
	return ""
}
