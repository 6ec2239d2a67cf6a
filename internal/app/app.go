// Package app implements the lazylist terminal picker on top of the list
// view engine.
package app

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazylist/internal/app/screen"
	"github.com/chmouel/lazylist/internal/catalog"
	"github.com/chmouel/lazylist/internal/config"
	"github.com/chmouel/lazylist/internal/listview"
	"github.com/chmouel/lazylist/internal/log"
	"github.com/chmouel/lazylist/internal/theme"
)

// Data sources of the main list, in display order.
const (
	sourceRecommended = iota
	sourceMoreRecommended
	sourceOthers
	sourceMoreOthers
)

// Ids of the "load more" rows.
const (
	fetchRecommendedID listview.ItemID = "lazylist:fetch-recommended"
	fetchOthersID      listview.ItemID = "lazylist:fetch-others"
)

type focusArea int

const (
	focusList focusArea = iota
	focusModes
	focusInput
	focusCount
)

// Result is what the picker returns when the user accepts.
type Result struct {
	IDs   []string
	Query string
}

// Model is the bubbletea model of the picker.
type Model struct {
	config  *config.AppConfig
	theme   *theme.Theme
	styles  theme.Styles
	session log.Session

	catalog     *catalog.Catalog
	recommended *catalog.Pager
	others      *catalog.Pager
	watcher     *catalog.Watcher

	list   *listview.View
	modes  *listview.View
	input  textinput.Model
	screen screen.Screen

	focus          focusArea
	fetching       map[listview.ItemID]bool
	toggled        map[listview.ItemID]bool // ctrl+d flags, true when disabled
	typeAheadGen   int
	recheckPending bool
	offset         int
	width          int
	height         int
	status         string
	err            error

	ctx    context.Context
	cancel context.CancelFunc

	result   *Result
	quitting bool
}

// NewModel builds the picker for cat using cfg.
func NewModel(cfg *config.AppConfig, cat *catalog.Catalog) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	ctx, cancel := context.WithCancel(context.Background())

	thm := theme.GetTheme(cfg.Theme)
	m := &Model{
		config:      cfg,
		theme:       thm,
		styles:      theme.NewStyles(thm),
		session:     log.NewSession(),
		catalog:     cat,
		recommended: catalog.NewPager(cat.Recommended, cfg.InitialCount, cfg.PageSize),
		others:      catalog.NewPager(cat.Items, cfg.InitialCount, cfg.PageSize),
		fetching:    make(map[listview.ItemID]bool),
		toggled:     make(map[listview.ItemID]bool),
		width:       80,
		height:      24,
		ctx:         ctx,
		cancel:      cancel,
	}

	m.list = listview.NewView(cfg.SelectionType, m.newBehaviour(cfg.Orientation, cfg.TypeAhead))
	m.list.SetSources(m.listSources()...)
	m.list.State.CurrentID = m.list.Sequence().First()
	m.syncDisabled()
	m.list.Refresh()
	m.list.OnChange = m.onListChange

	m.modes = listview.NewView(listview.SelectionSingle,
		listview.NewBehaviour(listview.Horizontal, m.config.Cyclic, listview.DefaultTypeAhead, m.config.TypeAheadTimeout),
		listview.SelectableValues("selection-type", listview.SelectionTypeNames()),
	)
	current := listview.ItemID(cfg.SelectionType.String())
	m.modes.State = listview.State{SelectedIDs: []listview.ItemID{current}, CurrentID: current}
	m.modes.OnChange = m.onModeChange

	ti := textinput.New()
	ti.Placeholder = "Type here when type-ahead is off"
	ti.Prompt = "> "
	ti.CharLimit = 256
	m.input = ti

	if cfg.WatchCatalog && cat.Path != "" && !isDir(cat.Path) {
		m.watcher = catalog.NewWatcher(cat.Path, m.session.Logf())
	}

	m.session.Printf("picker started: %d recommended, %d items, selection=%s orientation=%s",
		len(cat.Recommended), len(cat.Items), cfg.SelectionType, cfg.Orientation)
	return m
}

func (m *Model) newBehaviour(orientation listview.Orientation, typeAhead bool) *listview.Behaviour {
	strategy := listview.NoTypeAhead
	if typeAhead {
		strategy = listview.DefaultTypeAhead
	}
	return listview.NewBehaviour(orientation, m.config.Cyclic, strategy, m.config.TypeAheadTimeout)
}

// listSources composes the four sources of the main list.
func (m *Model) listSources() []listview.DataSource {
	return []listview.DataSource{
		catalog.Source("recommended", m.recommended.Visible()),
		sentinelSource(fetchRecommendedID, m.recommended.HasMore()),
		catalog.Source("items", m.others.Visible()),
		sentinelSource(fetchOthersID, m.others.HasMore()),
	}
}

// syncDisabled applies the catalog's disabled flags to the entries currently
// visible. Flags flipped with ctrl+d win over the catalog.
func (m *Model) syncDisabled() {
	seq := m.list.Sequence()
	fromCatalog := m.catalog.DisabledIDs()
	wanted := func(id listview.ItemID) bool {
		if !seq.Contains(id) {
			return false
		}
		if disabled, ok := m.toggled[id]; ok {
			return disabled
		}
		return slices.Contains(fromCatalog, id)
	}

	var ids []listview.ItemID
	add := func(id listview.ItemID) {
		if wanted(id) && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	for _, id := range m.list.State.DisabledIDs {
		add(id)
	}
	for _, id := range fromCatalog {
		add(id)
	}
	for _, id := range slices.Sorted(maps.Keys(m.toggled)) {
		add(id)
	}
	m.list.State.DisabledIDs = ids
}

func sentinelSource(id listview.ItemID, visible bool) listview.DataSource {
	if !visible {
		return listview.FromItems(string(id), nil)
	}
	return listview.Sentinel(id)
}

func (m *Model) onListChange(s listview.State) {
	m.session.Printf("list state: current=%q selected=%d disabled=%d",
		s.CurrentID, len(s.SelectedIDs), len(s.DisabledIDs))
}

func (m *Model) onModeChange(s listview.State) {
	if len(s.SelectedIDs) == 0 {
		return
	}
	st, err := listview.ParseSelectionType(string(s.SelectedIDs[0]))
	if err != nil || st == m.list.SelectionType {
		return
	}
	m.list.SelectionType = st
	m.list.Update(func(c *listview.Controller) { c.ClearSelection() })
	m.status = "selection type: " + st.String()
	m.session.Printf("selection type changed to %s", st)
}

// Init starts the catalog watcher and the cursor blink.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		if err := m.watcher.Start(); err != nil {
			m.session.Printf("catalog watcher disabled: %v", err)
			m.watcher = nil
		} else {
			cmds = append(cmds, m.waitForCatalogChange())
		}
	}
	return tea.Batch(cmds...)
}

// Update routes messages to their handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(10, m.width-6)
		if r, ok := m.screen.(screen.Resizer); ok {
			r.SetSize(m.width, m.height)
		}
		m.ensureVisible()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case fetchMoreMsg:
		return m, m.handleFetchMore(msg)
	case typeAheadIdleMsg:
		if msg.gen == m.typeAheadGen {
			m.list.Behaviour.ResetTypeAhead()
		}
		return m, nil
	case catalogChangedMsg:
		return m, m.handleCatalogChanged()
	case catalogRecheckMsg:
		m.handleCatalogRecheck()
		return m, nil
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Result returns the accepted selection, or nil if the user cancelled.
func (m *Model) Result() *Result {
	return m.result
}

// SelectedIDs returns the current selection in selection order.
func (m *Model) SelectedIDs() []string {
	out := make([]string, 0, len(m.list.State.SelectedIDs))
	for _, id := range m.list.State.SelectedIDs {
		out = append(out, string(id))
	}
	return out
}

// State returns a copy of the main list state.
func (m *Model) State() listview.State {
	return m.list.State.Clone()
}

// Close releases the watcher and cancels pending fetches.
func (m *Model) Close() {
	m.cancel()
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

func (m *Model) accept() tea.Cmd {
	ids := m.SelectedIDs()
	if m.list.SelectionType == listview.SelectionNone {
		if item, ok := m.list.Current(); ok && !isSentinel(item.ID) {
			ids = []string{string(item.ID)}
		}
	}
	m.result = &Result{IDs: ids, Query: strings.TrimSpace(m.input.Value())}
	m.session.Printf("accepted %d ids", len(ids))
	return m.quit()
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.Close()
	return tea.Quit
}

func isSentinel(id listview.ItemID) bool {
	return id == fetchRecommendedID || id == fetchOthersID
}
