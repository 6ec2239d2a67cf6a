package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/lazylist/internal/catalog"
	"github.com/chmouel/lazylist/internal/listview"
	"github.com/muesli/reflow/truncate"
)

// View renders the picker and any open overlay.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{m.renderHeader(), m.renderModeBar(), m.renderInput()}
	lines = append(lines, m.renderList()...)
	lines = append(lines, m.renderFooter())
	for i, line := range lines {
		lines[i] = padLine(line, m.width)
	}
	base := strings.Join(lines, "\n")

	if m.screen != nil {
		return m.overlayPopup(base, m.screen.View(), 1)
	}
	return base
}

func (m *Model) renderHeader() string {
	parts := []string{m.styles.Title.Render("lazylist")}
	if m.catalog.Path != "" {
		parts = append(parts, m.styles.Status.Render(m.catalog.Path))
	}
	counts := fmt.Sprintf("%d/%d selected", len(m.list.State.SelectedIDs), m.list.Sequence().Len())
	parts = append(parts, m.styles.Status.Render(counts))
	return strings.Join(parts, " • ")
}

func (m *Model) renderModeBar() string {
	var b strings.Builder
	prefix := m.styles.Status
	if m.focus == focusModes {
		prefix = m.styles.Key
	}
	b.WriteString(prefix.Render(modeBarPrefix))
	for _, p := range m.modes.Items() {
		style := m.styles.Tab
		if p.IsSelected {
			style = m.styles.ActiveTab
		}
		label := string(p.Item.ID)
		if p.IsCurrent && m.focus == focusModes {
			style = style.Underline(true)
		}
		b.WriteString(style.Render(label))
	}
	return b.String()
}

func (m *Model) renderInput() string {
	return m.input.View()
}

func (m *Model) renderList() []string {
	rows := m.rows()
	h := m.listHeight()
	out := make([]string, 0, h)
	if len(rows) == 0 {
		out = append(out, m.styles.Description.Render("  nothing to show"))
	}
	for i := m.offset; i < len(rows) && len(out) < h; i++ {
		r := rows[i]
		if !r.isItem {
			out = append(out, m.styles.Heading.Render(r.heading))
			continue
		}
		out = append(out, m.renderRow(r.props))
	}
	for len(out) < h {
		out = append(out, "")
	}
	return out
}

func (m *Model) renderRow(p listview.ItemProps) string {
	if isSentinel(p.Item.ID) {
		label := "↓ Load more"
		if m.fetching[p.Item.ID] {
			label = "… Loading"
		}
		return m.decorate(m.styles.Sentinel.Render(label), p)
	}

	entry, _ := p.Item.Value.(catalog.Entry)
	style := m.styles.Item
	switch {
	case p.IsDisabled:
		style = m.styles.Disabled
	case !p.Item.Selectable:
		style = m.styles.Description
	case p.IsSelected:
		style = m.styles.Selected
	}

	var b strings.Builder
	b.WriteString(m.selectionMark(p))
	if m.config.ShowIcons && entry.Icon != "" {
		b.WriteString(entry.Icon + " ")
	}
	b.WriteString(style.Render(entry.Title()))
	if entry.Description != "" {
		b.WriteString("  " + m.styles.Description.Render(entry.Description))
	}
	return m.decorate(b.String(), p)
}

func (m *Model) selectionMark(p listview.ItemProps) string {
	if !p.Item.Selectable {
		return "    "
	}
	switch m.list.SelectionType {
	case listview.SelectionSingle:
		if p.IsSelected {
			return "(•) "
		}
		return "( ) "
	case listview.SelectionMultiple:
		if p.IsSelected {
			return "[x] "
		}
		return "[ ] "
	}
	return ""
}

// decorate adds the cursor column and fits the row to the window width.
func (m *Model) decorate(text string, p listview.ItemProps) string {
	cursor := "  "
	if p.IsCurrent {
		cursor = "› "
	}
	line := truncate.StringWithTail(cursor+text, uint(max(1, m.width)), "…")
	if p.IsCurrent && m.focus == focusList {
		return m.styles.Current.Render(padLine(ansi.Strip(line), m.width))
	}
	return line
}

func (m *Model) renderFooter() string {
	if m.err != nil {
		return m.styles.Error.Render("error: " + m.err.Error())
	}
	if q := m.list.Behaviour.Buffer().Query(); q != "" {
		return m.styles.Key.Render("search: ") + q
	}
	if m.status != "" {
		return m.styles.Status.Render(m.status)
	}

	hints := []struct{ key, desc string }{
		{"enter", "select"},
		{"space", "toggle"},
		{"ctrl+s", "accept"},
		{"tab", "focus"},
		{"f1", "help"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, m.styles.Key.Render(h.key)+" "+m.styles.Status.Render(h.desc))
	}
	return strings.Join(parts, "  ")
}

// overlayPopup draws popup centred over base, starting marginTop lines down.
func (m *Model) overlayPopup(base, popup string, marginTop int) string {
	if base == "" || popup == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")
	baseWidth := lipgloss.Width(baseLines[0])
	popupWidth := lipgloss.Width(popupLines[0])
	leftPad := max((baseWidth-popupWidth)/2, 0)

	for i, line := range popupLines {
		row := marginTop + i
		if row >= len(baseLines) {
			break
		}
		leftPart := ansi.Truncate(baseLines[row], leftPad, "")
		if w := lipgloss.Width(leftPart); w < leftPad {
			leftPart += strings.Repeat(" ", leftPad-w)
		}
		rightPart := ansi.TruncateLeft(baseLines[row], leftPad+popupWidth, "")
		baseLines[row] = leftPart + line + rightPart
	}
	return strings.Join(baseLines, "\n")
}

func padLine(line string, width int) string {
	if w := lipgloss.Width(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}
