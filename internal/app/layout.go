package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazylist/internal/listview"
)

// Fixed screen lines above the list.
const (
	headerLine  = 0
	modeBarLine = 1
	inputLine   = 2
	listTop     = 3
	footerLines = 1
)

const modeBarPrefix = "selection "

var sourceHeadings = map[int]string{
	sourceRecommended: "Recommended",
	sourceOthers:      "All items",
}

// row is one line of the list area: either a heading or an item.
type row struct {
	heading string
	props   listview.ItemProps
	isItem  bool
}

func (m *Model) rows() []row {
	var out []row
	for si := range m.list.Sources {
		items := m.list.SourceItems(si)
		if heading, ok := sourceHeadings[si]; ok && len(items) > 0 {
			out = append(out, row{heading: heading})
		}
		for _, p := range items {
			out = append(out, row{props: p, isItem: true})
		}
	}
	return out
}

func (m *Model) listHeight() int {
	return max(1, m.height-listTop-footerLines)
}

// ensureVisible scrolls so the current item is on screen, keeping its
// heading visible when it is the first item of a group.
func (m *Model) ensureVisible() {
	rows := m.rows()
	h := m.listHeight()
	current := -1
	for i, r := range rows {
		if r.isItem && r.props.IsCurrent {
			current = i
			break
		}
	}
	if current >= 0 {
		top := current
		if top > 0 && !rows[top-1].isItem {
			top--
		}
		if top < m.offset {
			m.offset = top
		}
		if current >= m.offset+h {
			m.offset = current - h + 1
		}
	}
	m.offset = max(0, min(m.offset, len(rows)-h))
}

// itemAt maps a screen line to the item rendered there.
func (m *Model) itemAt(y int) (listview.ItemID, bool) {
	if y < listTop || y >= listTop+m.listHeight() {
		return listview.NoItem, false
	}
	rows := m.rows()
	i := m.offset + y - listTop
	if i < 0 || i >= len(rows) || !rows[i].isItem {
		return listview.NoItem, false
	}
	return rows[i].props.Item.ID, true
}

// modeSpans returns the [start, end) columns of each mode tab.
func (m *Model) modeSpans() []struct {
	id         listview.ItemID
	start, end int
} {
	var spans []struct {
		id         listview.ItemID
		start, end int
	}
	x := lipgloss.Width(modeBarPrefix)
	for _, p := range m.modes.Items() {
		w := lipgloss.Width(m.styles.Tab.Render(string(p.Item.ID)))
		spans = append(spans, struct {
			id         listview.ItemID
			start, end int
		}{p.Item.ID, x, x + w})
		x += w
	}
	return spans
}

func (m *Model) modeAt(x, y int) (listview.ItemID, bool) {
	if y != modeBarLine {
		return listview.NoItem, false
	}
	for _, s := range m.modeSpans() {
		if x >= s.start && x < s.end {
			return s.id, true
		}
	}
	return listview.NoItem, false
}
