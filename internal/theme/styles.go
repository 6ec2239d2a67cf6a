package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title       lipgloss.Style
	Heading     lipgloss.Style
	Item        lipgloss.Style
	Current     lipgloss.Style
	Selected    lipgloss.Style
	Disabled    lipgloss.Style
	Sentinel    lipgloss.Style
	Description lipgloss.Style
	Focused     lipgloss.Style
	Blurred     lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Key         lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t *Theme) Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(t.Info).Bold(true),
		Item:        lipgloss.NewStyle().Foreground(t.TextFg),
		Current:     lipgloss.NewStyle().Foreground(t.TextFg).Background(t.Current).Bold(true),
		Selected:    lipgloss.NewStyle().Foreground(t.Selected),
		Disabled:    lipgloss.NewStyle().Foreground(t.MutedFg).Strikethrough(true),
		Sentinel:    lipgloss.NewStyle().Foreground(t.WarnFg).Italic(true),
		Description: lipgloss.NewStyle().Foreground(t.MutedFg),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),
		Blurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderDim).
			Padding(0, 1),
		Status:    lipgloss.NewStyle().Foreground(t.MutedFg),
		Error:     lipgloss.NewStyle().Foreground(t.ErrorFg).Bold(true),
		Key:       lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(t.MutedFg).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(t.AccentFg).Background(t.Accent).Bold(true).Padding(0, 1),
	}
}
