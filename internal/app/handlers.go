package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazylist/internal/app/screen"
	"github.com/chmouel/lazylist/internal/listview"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen != nil {
		next, cmd := m.screen.Update(msg)
		if next == nil {
			m.session.Printf("closed %s screen", m.screen.Type())
		}
		m.screen = next
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return m, m.quit()
	case "esc":
		if m.list.Behaviour.Buffer().Query() != "" {
			m.list.Behaviour.ResetTypeAhead()
			return m, nil
		}
		if m.focus != focusList {
			m.setFocus(focusList)
			return m, nil
		}
		return m, m.quit()
	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case "f1":
		m.screen = screen.NewHelpScreen(m.width, m.height, m.theme)
		m.session.Printf("opened %s screen", m.screen.Type())
		return m, nil
	case "ctrl+s":
		return m, m.accept()
	case "ctrl+t":
		m.toggleTypeAhead()
		return m, nil
	case "ctrl+d":
		m.toggleCurrentDisabled()
		return m, nil
	}

	switch m.focus {
	case focusModes:
		m.modes.HandleKey(msg)
		return m, nil
	case focusInput:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, m.handleListKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.list.HandleKey(msg) {
	case listview.ActionNone:
		if m.list.Behaviour.TypeAhead.Enabled() || !forwardsToInput(msg) {
			return nil
		}
		// Characters the list does not consume belong to the text field.
		m.setFocus(focusInput)
		m.input, cmd = m.input.Update(msg)
		return cmd
	case listview.ActionTypeAhead:
		cmd = m.typeAheadIdleCmd()
	case listview.ActionActivated:
		cmd = m.activateCurrent()
	}
	m.ensureVisible()
	return cmd
}

func forwardsToInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace:
		return !msg.Alt
	}
	return false
}

// activateCurrent runs after Enter: sentinels load more, and in single
// selection mode the chosen item is accepted.
func (m *Model) activateCurrent() tea.Cmd {
	item, ok := m.list.Current()
	if !ok {
		return nil
	}
	if isSentinel(item.ID) {
		m.status = "loading…"
		return m.fetchMoreCmd(item.ID)
	}
	if m.list.SelectionType == listview.SelectionSingle && m.list.State.IsSelected(item.ID) {
		return m.accept()
	}
	return nil
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) toggleTypeAhead() {
	b := m.list.Behaviour
	b.ResetTypeAhead()
	if b.TypeAhead.Enabled() {
		b.TypeAhead = listview.NoTypeAhead
		m.status = "type-ahead off"
	} else {
		b.TypeAhead = listview.DefaultTypeAhead
		m.status = "type-ahead on"
	}
	m.session.Printf("%s", m.status)
}

// toggleCurrentDisabled flips the disabled flag of the current item. Focus
// returns to the list only when the item was disabled before.
func (m *Model) toggleCurrentDisabled() {
	id := m.list.State.CurrentID
	if id == listview.NoItem || isSentinel(id) {
		return
	}
	wasDisabled := m.list.State.IsDisabled(id)
	m.list.Update(func(c *listview.Controller) { c.ToggleItemDisabled(id) })
	m.toggled[id] = !wasDisabled
	if wasDisabled {
		m.setFocus(focusList)
	}
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen != nil {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.Update(func(c *listview.Controller) { c.MoveToPrevious(false) })
		m.ensureVisible()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.list.Update(func(c *listview.Controller) { c.MoveToNext(false) })
		m.ensureVisible()
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if id, ok := m.modeAt(msg.X, msg.Y); ok {
		m.setFocus(focusModes)
		m.modes.HandleClick(id, listview.Modifiers{})
		return m, nil
	}
	if msg.Y == inputLine {
		m.setFocus(focusInput)
		return m, nil
	}

	id, ok := m.itemAt(msg.Y)
	if !ok {
		return m, nil
	}
	m.setFocus(focusList)
	m.list.HandleClick(id, listview.Modifiers{Shift: msg.Shift, Ctrl: msg.Ctrl || msg.Alt})
	m.ensureVisible()
	if isSentinel(id) {
		return m, m.fetchMoreCmd(id)
	}
	return m, nil
}
