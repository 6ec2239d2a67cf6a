package app

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazylist/internal/catalog"
	"github.com/chmouel/lazylist/internal/listview"
)

type fetchMoreMsg struct {
	sentinel listview.ItemID
	entries  []catalog.Entry
	err      error
}

type typeAheadIdleMsg struct {
	gen int
}

type catalogChangedMsg struct{}

// catalogRecheckMsg reloads changes that arrived inside the debounce window.
type catalogRecheckMsg struct{}

func (m *Model) pagerFor(sentinel listview.ItemID) (*catalog.Pager, int) {
	switch sentinel {
	case fetchRecommendedID:
		return m.recommended, sourceRecommended
	case fetchOthersID:
		return m.others, sourceOthers
	}
	return nil, -1
}

// fetchMoreCmd grows the source behind sentinel. Concurrent requests for the
// same sentinel are collapsed.
func (m *Model) fetchMoreCmd(sentinel listview.ItemID) tea.Cmd {
	pager, _ := m.pagerFor(sentinel)
	if pager == nil || m.fetching[sentinel] || !pager.HasMore() {
		return nil
	}
	m.fetching[sentinel] = true
	m.session.Printf("fetch more requested for %s", sentinel)

	ctx := m.ctx
	return func() tea.Msg {
		entries, err := pager.FetchMore(ctx)
		return fetchMoreMsg{sentinel: sentinel, entries: entries, err: err}
	}
}

func (m *Model) handleFetchMore(msg fetchMoreMsg) tea.Cmd {
	delete(m.fetching, msg.sentinel)
	if msg.err != nil {
		m.err = msg.err
		m.session.Printf("fetch more failed for %s: %v", msg.sentinel, msg.err)
		return nil
	}

	pager, si := m.pagerFor(msg.sentinel)
	previous := m.list.Sources[si].Len()
	m.list.SetSource(si, catalog.Source(m.list.Sources[si].Name(), msg.entries))
	m.list.SetSource(si+1, sentinelSource(msg.sentinel, pager.HasMore()))
	m.syncDisabled()
	m.status = ""
	m.session.Printf("fetched %d entries for %s", len(msg.entries)-previous, msg.sentinel)

	// Focus follows the sentinel onto the first revealed row.
	if m.list.State.CurrentID == msg.sentinel && len(msg.entries) > previous {
		first := listview.ItemID(msg.entries[previous].ID)
		m.list.Update(func(c *listview.Controller) { c.MoveToItem(first) })
	} else {
		m.list.Refresh()
	}
	m.ensureVisible()
	return nil
}

func (m *Model) typeAheadIdleCmd() tea.Cmd {
	m.typeAheadGen++
	gen := m.typeAheadGen
	return tea.Tick(m.list.Behaviour.Buffer().Timeout(), func(time.Time) tea.Msg {
		return typeAheadIdleMsg{gen: gen}
	})
}

func (m *Model) waitForCatalogChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.NextEvent()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return catalogChangedMsg{}
	}
}

func (m *Model) handleCatalogChanged() tea.Cmd {
	m.watcher.ResetWaiting()
	now := time.Now()
	cmds := []tea.Cmd{m.waitForCatalogChange()}
	switch {
	case m.watcher.ShouldReload(now):
		m.reloadCatalog()
	case !m.recheckPending:
		m.recheckPending = true
		cmds = append(cmds, tea.Tick(m.watcher.Remaining(now), func(time.Time) tea.Msg {
			return catalogRecheckMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleCatalogRecheck() {
	m.recheckPending = false
	if m.watcher == nil {
		return
	}
	m.watcher.LastRefresh = time.Now()
	m.reloadCatalog()
}

// reloadCatalog re-reads the catalog file. Entries that disappeared are
// pruned from the selection.
func (m *Model) reloadCatalog() {
	cat, err := catalog.Load(m.catalog.Path)
	if err != nil {
		m.err = err
		m.session.Printf("catalog reload failed: %v", err)
		return
	}
	m.applyCatalog(cat)
	m.status = "catalog reloaded"
	m.session.Printf("catalog reloaded: %d entries", cat.Len())
}

func (m *Model) applyCatalog(cat *catalog.Catalog) {
	m.catalog = cat
	m.err = nil
	m.recommended.Replace(cat.Recommended)
	m.others.Replace(cat.Items)
	m.list.SetSources(m.listSources()...)
	m.syncDisabled()
	m.list.Refresh()
	if m.list.State.CurrentID == listview.NoItem {
		m.list.Update(func(c *listview.Controller) { c.MoveToFirst() })
	}
	m.ensureVisible()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
