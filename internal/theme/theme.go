// Package theme provides the colour palettes and list styles used by the TUI.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines all colors used in the picker.
type Theme struct {
	Accent    lipgloss.Color
	AccentFg  lipgloss.Color // text on Accent
	Current   lipgloss.Color // background of the current row
	Border    lipgloss.Color
	BorderDim lipgloss.Color
	MutedFg   lipgloss.Color
	TextFg    lipgloss.Color
	Selected  lipgloss.Color
	WarnFg    lipgloss.Color
	ErrorFg   lipgloss.Color
	Info      lipgloss.Color
}

// Theme names.
const (
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NordName            = "nord"
	GruvboxDarkName     = "gruvbox-dark"
	GruvboxLightName    = "gruvbox-light"
	CatppuccinMochaName = "catppuccin-mocha"
	SolarizedLightName  = "solarized-light"
)

type entry struct {
	light bool
	build func() *Theme
}

var registry = map[string]entry{
	DraculaName:         {build: dracula},
	DraculaLightName:    {light: true, build: draculaLight},
	NordName:            {build: nord},
	GruvboxDarkName:     {build: gruvboxDark},
	GruvboxLightName:    {light: true, build: gruvboxLight},
	CatppuccinMochaName: {build: catppuccinMocha},
	SolarizedLightName:  {light: true, build: solarizedLight},
}

func dracula() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#BD93F9"),
		AccentFg:  lipgloss.Color("#282A36"),
		Current:   lipgloss.Color("#44475A"),
		Border:    lipgloss.Color("#6272A4"),
		BorderDim: lipgloss.Color("#44475A"),
		MutedFg:   lipgloss.Color("#6272A4"),
		TextFg:    lipgloss.Color("#F8F8F2"),
		Selected:  lipgloss.Color("#50FA7B"),
		WarnFg:    lipgloss.Color("#FFB86C"),
		ErrorFg:   lipgloss.Color("#FF5555"),
		Info:      lipgloss.Color("#8BE9FD"),
	}
}

func draculaLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#7C3AED"),
		AccentFg:  lipgloss.Color("#FFFFFF"),
		Current:   lipgloss.Color("#F3E8FF"),
		Border:    lipgloss.Color("#D0D7DE"),
		BorderDim: lipgloss.Color("#E8E8E8"),
		MutedFg:   lipgloss.Color("#6E7781"),
		TextFg:    lipgloss.Color("#24292F"),
		Selected:  lipgloss.Color("#059669"),
		WarnFg:    lipgloss.Color("#D97706"),
		ErrorFg:   lipgloss.Color("#DC2626"),
		Info:      lipgloss.Color("#0891B2"),
	}
}

func nord() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#88C0D0"),
		AccentFg:  lipgloss.Color("#2E3440"),
		Current:   lipgloss.Color("#3B4252"),
		Border:    lipgloss.Color("#4C566A"),
		BorderDim: lipgloss.Color("#434C5E"),
		MutedFg:   lipgloss.Color("#81A1C1"),
		TextFg:    lipgloss.Color("#E5E9F0"),
		Selected:  lipgloss.Color("#A3BE8C"),
		WarnFg:    lipgloss.Color("#EBCB8B"),
		ErrorFg:   lipgloss.Color("#BF616A"),
		Info:      lipgloss.Color("#8FBCBB"),
	}
}

func gruvboxDark() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#FABD2F"),
		AccentFg:  lipgloss.Color("#282828"),
		Current:   lipgloss.Color("#3C3836"),
		Border:    lipgloss.Color("#504945"),
		BorderDim: lipgloss.Color("#3C3836"),
		MutedFg:   lipgloss.Color("#928374"),
		TextFg:    lipgloss.Color("#EBDBB2"),
		Selected:  lipgloss.Color("#B8BB26"),
		WarnFg:    lipgloss.Color("#FE8019"),
		ErrorFg:   lipgloss.Color("#FB4934"),
		Info:      lipgloss.Color("#83A598"),
	}
}

func gruvboxLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#D79921"),
		AccentFg:  lipgloss.Color("#FBF1C7"),
		Current:   lipgloss.Color("#EBDBB2"),
		Border:    lipgloss.Color("#D5C4A1"),
		BorderDim: lipgloss.Color("#C0B58A"),
		MutedFg:   lipgloss.Color("#7C6F64"),
		TextFg:    lipgloss.Color("#3C3836"),
		Selected:  lipgloss.Color("#79740E"),
		WarnFg:    lipgloss.Color("#AF3A03"),
		ErrorFg:   lipgloss.Color("#9D0006"),
		Info:      lipgloss.Color("#427B58"),
	}
}

func catppuccinMocha() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#B4BEFE"),
		AccentFg:  lipgloss.Color("#1E1E2E"),
		Current:   lipgloss.Color("#313244"),
		Border:    lipgloss.Color("#45475A"),
		BorderDim: lipgloss.Color("#313244"),
		MutedFg:   lipgloss.Color("#6C7086"),
		TextFg:    lipgloss.Color("#CDD6F4"),
		Selected:  lipgloss.Color("#A6E3A1"),
		WarnFg:    lipgloss.Color("#F9E2AF"),
		ErrorFg:   lipgloss.Color("#F38BA8"),
		Info:      lipgloss.Color("#89DCEB"),
	}
}

func solarizedLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#268BD2"),
		AccentFg:  lipgloss.Color("#FDF6E3"),
		Current:   lipgloss.Color("#EEE8D5"),
		Border:    lipgloss.Color("#93A1A1"),
		BorderDim: lipgloss.Color("#E4DDC7"),
		MutedFg:   lipgloss.Color("#93A1A1"),
		TextFg:    lipgloss.Color("#073642"),
		Selected:  lipgloss.Color("#859900"),
		WarnFg:    lipgloss.Color("#CB4B16"),
		ErrorFg:   lipgloss.Color("#DC322F"),
		Info:      lipgloss.Color("#2AA198"),
	}
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	if e, ok := registry[name]; ok {
		return e.build()
	}
	return dracula()
}

// Exists reports whether name is a known theme.
func Exists(name string) bool {
	_, ok := registry[name]
	return ok
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	return registry[name].light
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DraculaName
}

// DefaultLight returns the default light theme name.
func DefaultLight() string {
	return DraculaLightName
}

// Detect picks the default theme matching the terminal background.
func Detect() string {
	if lipgloss.HasDarkBackground() {
		return DefaultDark()
	}
	return DefaultLight()
}

// AvailableThemes returns the sorted list of theme names.
func AvailableThemes() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
