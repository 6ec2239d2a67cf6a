package catalog

import (
	"context"
	"sync"
	"time"
)

// DefaultFetchDelay simulates a remote page load.
const DefaultFetchDelay = 250 * time.Millisecond

// Pager exposes a growing window over a fixed list of entries.
type Pager struct {
	mu       sync.Mutex
	entries  []Entry
	visible  int
	pageSize int
	delay    time.Duration
}

// NewPager shows the first initial entries and grows by pageSize on each
// fetch.
func NewPager(entries []Entry, initial, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = 1
	}
	p := &Pager{entries: entries, pageSize: pageSize, delay: DefaultFetchDelay}
	p.visible = clamp(initial, len(entries))
	return p
}

// SetDelay changes the simulated latency of FetchMore.
func (p *Pager) SetDelay(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.delay = d
}

// Visible returns a copy of the entries currently revealed.
func (p *Pager) Visible() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Entry(nil), p.entries[:p.visible]...)
}

// HasMore reports whether a fetch would reveal anything.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible < len(p.entries)
}

// FetchMore waits for the simulated latency, reveals the next page and
// returns the grown window. The window is unchanged if ctx is cancelled.
func (p *Pager) FetchMore(ctx context.Context) ([]Entry, error) {
	p.mu.Lock()
	delay := p.delay
	p.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.visible = clamp(p.visible+p.pageSize, len(p.entries))
	p.mu.Unlock()
	return p.Visible(), nil
}

// Replace swaps the backing entries, keeping the revealed count where
// possible.
func (p *Pager) Replace(entries []Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = entries
	p.visible = clamp(p.visible, len(entries))
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
