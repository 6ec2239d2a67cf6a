package listview

import (
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Action reports what a handled input event did.
type Action int

// Input actions.
const (
	// ActionNone means the event was not consumed and may be routed elsewhere.
	ActionNone Action = iota
	// ActionMoved means focus moved (or stayed at a boundary).
	ActionMoved
	// ActionSelected means the selection was changed interactively.
	ActionSelected
	// ActionActivated means Enter was pressed on the current item.
	ActionActivated
	// ActionTypeAhead means a character was consumed by type-ahead search.
	ActionTypeAhead
)

// String returns a short name for logs.
func (a Action) String() string {
	switch a {
	case ActionMoved:
		return "moved"
	case ActionSelected:
		return "selected"
	case ActionActivated:
		return "activated"
	case ActionTypeAhead:
		return "type-ahead"
	default:
		return "none"
	}
}

// Modifiers carries the modifier keys held during a pointer interaction.
type Modifiers struct {
	Shift bool
	Ctrl  bool
}

// Behaviour translates raw keyboard and pointer input into controller
// operations. It owns the per-instance type-ahead buffer.
type Behaviour struct {
	Orientation Orientation
	Cyclic      bool
	TypeAhead   TypeAheadStrategy

	buffer *TypeAheadBuffer
	now    func() time.Time
}

// NewBehaviour creates a navigation behaviour. A nil strategy disables
// type-ahead.
func NewBehaviour(orientation Orientation, cyclic bool, strategy TypeAheadStrategy, timeout time.Duration) *Behaviour {
	if strategy == nil {
		strategy = NoTypeAhead
	}
	return &Behaviour{
		Orientation: orientation,
		Cyclic:      cyclic,
		TypeAhead:   strategy,
		buffer:      NewTypeAheadBuffer(timeout),
		now:         time.Now,
	}
}

// SetClock replaces the time source used to age the type-ahead buffer.
func (b *Behaviour) SetClock(now func() time.Time) {
	b.now = now
}

// Buffer exposes the type-ahead buffer.
func (b *Behaviour) Buffer() *TypeAheadBuffer { return b.buffer }

// ResetTypeAhead clears the buffered query. It is called by the idle timer
// and by every non-character key.
func (b *Behaviour) ResetTypeAhead() { b.buffer.Reset() }

func (b *Behaviour) forwardKey() string {
	if b.Orientation == Horizontal {
		return "right"
	}
	return "down"
}

func (b *Behaviour) backwardKey() string {
	if b.Orientation == Horizontal {
		return "left"
	}
	return "up"
}

// HandleKey applies msg to c and reports what happened.
func (b *Behaviour) HandleKey(msg tea.KeyMsg, c *Controller) Action {
	key := msg.String()

	switch key {
	case b.forwardKey():
		b.ResetTypeAhead()
		c.MoveToNext(b.Cyclic)
		return ActionMoved
	case b.backwardKey():
		b.ResetTypeAhead()
		c.MoveToPrevious(b.Cyclic)
		return ActionMoved
	case "home":
		b.ResetTypeAhead()
		c.MoveToFirst()
		return ActionMoved
	case "end":
		b.ResetTypeAhead()
		c.MoveToLast()
		return ActionMoved
	case "shift+" + b.forwardKey():
		b.ResetTypeAhead()
		b.extend(c, c.Sequence().Next(c.CurrentID(), b.Cyclic))
		return ActionSelected
	case "shift+" + b.backwardKey():
		b.ResetTypeAhead()
		b.extend(c, c.Sequence().Previous(c.CurrentID(), b.Cyclic))
		return ActionSelected
	case "shift+home":
		b.ResetTypeAhead()
		b.extend(c, c.Sequence().First())
		return ActionSelected
	case "shift+end":
		b.ResetTypeAhead()
		b.extend(c, c.Sequence().Last())
		return ActionSelected
	case "enter":
		b.ResetTypeAhead()
		if cur := c.CurrentID(); cur != NoItem {
			b.TriggerInteractiveSelection(c, cur, Modifiers{})
		}
		return ActionActivated
	case "ctrl+a":
		if c.SelectionType() != SelectionMultiple {
			return ActionNone
		}
		b.ResetTypeAhead()
		c.SelectAll()
		return ActionSelected
	case "ctrl+@":
		b.ResetTypeAhead()
		return b.toggleCurrent(c)
	case " ":
		if !b.TypeAhead.Enabled() {
			return ActionNone
		}
		if b.buffer.Active(b.now()) {
			return b.typeAhead(c, " ")
		}
		return b.toggleCurrent(c)
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && !msg.Paste && printable(msg.Runes) {
		if !b.TypeAhead.Enabled() {
			return ActionNone
		}
		return b.typeAhead(c, string(msg.Runes))
	}
	return ActionNone
}

// HandleClick applies a pointer activation on id.
func (b *Behaviour) HandleClick(c *Controller, id ItemID, mods Modifiers) Action {
	if !c.Sequence().Contains(id) {
		return ActionNone
	}
	b.ResetTypeAhead()
	b.TriggerInteractiveSelection(c, id, mods)
	return ActionSelected
}

// TriggerInteractiveSelection performs a click-equivalent selection of id:
// a plain activation selects it alone, Ctrl toggles it and Shift selects the
// range from the current anchor. Focus always follows.
func (b *Behaviour) TriggerInteractiveSelection(c *Controller, id ItemID, mods Modifiers) {
	switch {
	case mods.Shift:
		anchor := c.SelectionStartID()
		if anchor == NoItem {
			anchor = id
		}
		c.SelectItemsInRange(anchor, id)
	case mods.Ctrl:
		c.ToggleItemSelection(id)
	default:
		c.SelectItem(id)
	}
	c.MoveToItem(id)
}

func (b *Behaviour) extend(c *Controller, target ItemID) {
	anchor := c.SelectionStartID()
	if anchor == NoItem {
		anchor = target
	}
	c.SelectItemsInRange(anchor, target).MoveToItem(target)
}

func (b *Behaviour) toggleCurrent(c *Controller) Action {
	cur := c.CurrentID()
	if cur == NoItem || c.SelectionType() == SelectionNone {
		return ActionNone
	}
	c.ToggleItemSelection(cur)
	return ActionSelected
}

// typeAhead appends text to the query and focuses the next match. A one
// character query searches from just after the current item so repeated
// first letters advance; a longer query starts at the current item so
// refining keeps the match.
func (b *Behaviour) typeAhead(c *Controller, text string) Action {
	query := b.buffer.Append(text, b.now())

	seq := c.Sequence()
	start := 0
	if cur, ok := seq.IndexOf(c.CurrentID()); ok {
		start = cur
		if len([]rune(query)) == 1 {
			start = cur + 1
		}
	}
	if id, ok := b.TypeAhead.Match(query, seq.Items(), start); ok {
		c.MoveToItem(id)
	}
	return ActionTypeAhead
}

func printable(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
