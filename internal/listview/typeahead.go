package listview

import (
	"strings"
	"time"
)

// DefaultTypeAheadTimeout is the idle window after which a type-ahead query
// starts over.
const DefaultTypeAheadTimeout = 500 * time.Millisecond

// TypeAheadStrategy maps a buffered query onto the item to focus next.
type TypeAheadStrategy interface {
	// Match returns the first item at or after start, wrapping once, that
	// matches query.
	Match(query string, items []Item, start int) (ItemID, bool)
	// Enabled reports whether character input should drive navigation.
	Enabled() bool
}

// PrefixTypeAhead matches items whose type-ahead text starts with the query,
// ignoring case.
type PrefixTypeAhead struct{}

// Match implements TypeAheadStrategy.
func (PrefixTypeAhead) Match(query string, items []Item, start int) (ItemID, bool) {
	if query == "" || len(items) == 0 {
		return NoItem, false
	}
	if start < 0 || start >= len(items) {
		start = 0
	}
	needle := strings.ToLower(query)
	for n := range len(items) {
		item := items[(start+n)%len(items)]
		if item.TypeAheadText == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(item.TypeAheadText), needle) {
			return item.ID, true
		}
	}
	return NoItem, false
}

// Enabled implements TypeAheadStrategy.
func (PrefixTypeAhead) Enabled() bool { return true }

// DisabledTypeAhead never matches, leaving character input to other
// consumers such as a composed text field.
type DisabledTypeAhead struct{}

// Match implements TypeAheadStrategy.
func (DisabledTypeAhead) Match(string, []Item, int) (ItemID, bool) { return NoItem, false }

// Enabled implements TypeAheadStrategy.
func (DisabledTypeAhead) Enabled() bool { return false }

var (
	// DefaultTypeAhead is the prefix matching strategy.
	DefaultTypeAhead TypeAheadStrategy = PrefixTypeAhead{}
	// NoTypeAhead disables type-ahead navigation.
	NoTypeAhead TypeAheadStrategy = DisabledTypeAhead{}
)

// TypeAheadBuffer accumulates type-ahead characters for one widget instance.
// A keystroke arriving after the idle timeout starts a fresh query.
type TypeAheadBuffer struct {
	query   string
	last    time.Time
	timeout time.Duration
}

// NewTypeAheadBuffer creates a buffer; a non-positive timeout uses
// DefaultTypeAheadTimeout.
func NewTypeAheadBuffer(timeout time.Duration) *TypeAheadBuffer {
	if timeout <= 0 {
		timeout = DefaultTypeAheadTimeout
	}
	return &TypeAheadBuffer{timeout: timeout}
}

// Timeout returns the idle window.
func (b *TypeAheadBuffer) Timeout() time.Duration { return b.timeout }

// Append adds text typed at now and returns the resulting query.
func (b *TypeAheadBuffer) Append(text string, now time.Time) string {
	if b.Expired(now) {
		b.query = ""
	}
	b.query += text
	b.last = now
	return b.query
}

// Query returns the buffered query.
func (b *TypeAheadBuffer) Query() string { return b.query }

// Active reports whether a query is buffered and still within the window.
func (b *TypeAheadBuffer) Active(now time.Time) bool {
	return b.query != "" && !b.Expired(now)
}

// Expired reports whether the idle window has elapsed since the last input.
func (b *TypeAheadBuffer) Expired(now time.Time) bool {
	return !b.last.IsZero() && now.Sub(b.last) >= b.timeout
}

// Reset clears the query.
func (b *TypeAheadBuffer) Reset() {
	b.query = ""
	b.last = time.Time{}
}
