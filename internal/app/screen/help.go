package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazylist/internal/theme"
	"github.com/muesli/reflow/wrap"
)

type binding struct {
	keys string
	desc string
}

type helpSection struct {
	title    string
	bindings []binding
}

var helpSections = []helpSection{
	{"Navigation", []binding{
		{"↑ / ↓", "Move in the list (← / → when horizontal)"},
		{"Home / End", "Jump to the first / last item"},
		{"Tab / Shift+Tab", "Cycle focus between list, mode bar and text field"},
		{"Wheel", "Move in the list"},
	}},
	{"Selection", []binding{
		{"Enter", "Select the current item, load more on a \"load more\" row"},
		{"Space / Ctrl+Space", "Toggle the current item"},
		{"Shift+↑ / Shift+↓", "Extend the selection from the anchor"},
		{"Shift+Home / Shift+End", "Extend the selection to the first / last item"},
		{"Ctrl+A", "Select everything (multiple mode)"},
		{"Click", "Select; Ctrl+Click toggles, Shift+Click selects a range"},
		{"Ctrl+D", "Disable / enable the current item"},
		{"Ctrl+S", "Accept and print the selection"},
	}},
	{"Type-ahead", []binding{
		{"Letters", "Jump to the next item starting with what was typed"},
		{"Pause", "Typing after the timeout starts a new search"},
		{"Ctrl+T", "Toggle type-ahead; when off, typing goes to the text field"},
		{"Esc", "Clear the type-ahead query, then quit"},
	}},
	{"This screen", []binding{
		{"/", "Filter (Enter keeps the filter, Esc clears it)"},
		{"j / k", "Scroll down / up"},
		{"Ctrl+D / Ctrl+U", "Scroll half a page"},
		{"g / G", "Go to top / bottom"},
		{"q / Esc / F1", "Close"},
	}},
	{"Configuration", []binding{
		{"File", "~/.config/lazylist/config.yaml"},
		{"-C ll.key=value", "Override a key from the command line, e.g. -C ll.cyclic=false"},
	}},
}

// HelpScreen lists the key bindings in a scrollable, filterable box.
type HelpScreen struct {
	Viewport viewport.Model
	Filter   textinput.Model
	Width    int
	Height   int

	filtering bool
	query     string
	styles    theme.Styles
	thm       *theme.Theme
}

// NewHelpScreen sizes the help box to fit a maxWidth x maxHeight window.
func NewHelpScreen(maxWidth, maxHeight int, thm *theme.Theme) *HelpScreen {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter bindings"
	filter.CharLimit = 64

	hs := &HelpScreen{
		Viewport: viewport.New(0, 0),
		Filter:   filter,
		styles:   theme.NewStyles(thm),
		thm:      thm,
	}
	hs.SetSize(maxWidth, maxHeight)
	return hs
}

// Type implements Screen.
func (s *HelpScreen) Type() Type { return TypeHelp }

// Query returns the active filter.
func (s *HelpScreen) Query() string { return s.query }

// Filtering reports whether the filter field has focus.
func (s *HelpScreen) Filtering() bool { return s.filtering }

// Update implements Screen.
func (s *HelpScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	if s.filtering {
		return s.updateFilter(msg)
	}

	switch msg.String() {
	case "/":
		s.filtering = true
		return s, s.Filter.Focus()
	case "esc":
		if s.query != "" {
			s.setQuery("")
			return s, nil
		}
		return nil, nil
	case "q", "f1", "ctrl+c":
		return nil, nil
	case "j", "down":
		s.Viewport.ScrollDown(1)
	case "k", "up":
		s.Viewport.ScrollUp(1)
	case "ctrl+d", "pgdown", " ":
		s.Viewport.HalfPageDown()
	case "ctrl+u", "pgup":
		s.Viewport.HalfPageUp()
	case "g", "home":
		s.Viewport.GotoTop()
	case "G", "end":
		s.Viewport.GotoBottom()
	}
	return s, nil
}

func (s *HelpScreen) updateFilter(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.filtering = false
		s.Filter.Blur()
		return s, nil
	case "esc":
		s.filtering = false
		s.Filter.Blur()
		s.setQuery("")
		return s, nil
	}

	var cmd tea.Cmd
	s.Filter, cmd = s.Filter.Update(msg)
	if q := strings.TrimSpace(s.Filter.Value()); q != s.query {
		s.query = q
		s.refresh()
	}
	return s, cmd
}

func (s *HelpScreen) setQuery(q string) {
	s.query = q
	s.Filter.SetValue(q)
	s.refresh()
}

// SetSize implements Resizer. The box takes three quarters of the width and
// most of the height, within fixed bounds.
func (s *HelpScreen) SetSize(maxWidth, maxHeight int) {
	s.Width, s.Height = 80, 30
	if maxWidth > 0 {
		s.Width = min(100, max(40, maxWidth*3/4))
	}
	if maxHeight > 0 {
		s.Height = min(40, max(10, maxHeight*7/10))
	}
	// Border and padding take four columns; title, footer and border take
	// four lines.
	s.Viewport.Width = s.Width - 4
	s.Viewport.Height = max(3, s.Height-4)
	s.Filter.Width = max(10, s.Viewport.Width-4)
	s.refresh()
}

func (s *HelpScreen) refresh() {
	s.Viewport.SetContent(s.content())
	s.Viewport.GotoTop()
}

// content renders the sections, keeping only bindings that match the filter.
func (s *HelpScreen) content() string {
	query := strings.ToLower(s.query)
	keyWidth := 0
	for _, sec := range helpSections {
		for _, b := range sec.bindings {
			keyWidth = max(keyWidth, lipgloss.Width(b.keys))
		}
	}
	descWidth := max(10, s.Viewport.Width-keyWidth-3)
	indent := strings.Repeat(" ", keyWidth+3)
	mark := lipgloss.NewStyle().Foreground(s.thm.AccentFg).Background(s.thm.Accent)

	var lines []string
	for _, sec := range helpSections {
		var rows []string
		for _, b := range sec.bindings {
			if query != "" && !strings.Contains(strings.ToLower(b.keys+" "+b.desc), query) {
				continue
			}
			keys := s.styles.Key.Render(padRight(b.keys, keyWidth))
			descLines := strings.Split(wrap.String(b.desc, descWidth), "\n")
			for i, d := range descLines {
				d = highlight(d, query, mark)
				if i == 0 {
					rows = append(rows, " "+keys+"  "+d)
				} else {
					rows = append(rows, indent+d)
				}
			}
		}
		if len(rows) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, s.styles.Heading.Render(sec.title))
		lines = append(lines, rows...)
	}

	if len(lines) == 0 {
		return s.styles.Description.Render(fmt.Sprintf("No bindings match %q", s.query))
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// highlight marks case-insensitive occurrences of query in text. query is
// lower case.
func highlight(text, query string, style lipgloss.Style) string {
	if query == "" {
		return text
	}
	lower := strings.ToLower(text)
	if len(lower) != len(text) {
		return text
	}
	var b strings.Builder
	for {
		i := strings.Index(lower, query)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:i])
		b.WriteString(style.Render(text[i : i+len(query)]))
		text, lower = text[i+len(query):], lower[i+len(query):]
	}
}

// View implements Screen.
func (s *HelpScreen) View() string {
	footer := s.styles.Status.Render("/ filter • q close")
	if s.filtering || s.query != "" {
		footer = s.Filter.View()
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.styles.Title.Render("lazylist help"),
		s.Viewport.View(),
		footer,
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.thm.Accent).
		Padding(0, 1).
		Width(s.Width - 2).
		Render(body)
}
