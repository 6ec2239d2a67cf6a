package listview

import tea "github.com/charmbracelet/bubbletea"

// ItemProps are the per-item values a renderer needs.
type ItemProps struct {
	Item       Item
	Index      int
	Source     int
	IsSelected bool
	IsCurrent  bool
	IsDisabled bool

	// TriggerInteractiveSelection performs a click-equivalent selection.
	TriggerInteractiveSelection func(Modifiers)
	// MarkCurrent makes the item the navigation target.
	MarkCurrent func()
}

// View composes one or more data sources into a single navigable list and
// derives render props from the consumer's state.
//
// The consumer owns State: every interaction runs the controller once and
// reports the composed result through OnChange exactly one time.
type View struct {
	Sources       []DataSource
	State         State
	SelectionType SelectionType
	Behaviour     *Behaviour
	OnChange      func(State)

	seq *Sequence
}

// NewView creates a view over sources.
func NewView(selectionType SelectionType, behaviour *Behaviour, sources ...DataSource) *View {
	if behaviour == nil {
		behaviour = NewBehaviour(Vertical, false, NoTypeAhead, 0)
	}
	return &View{
		Sources:       append([]DataSource(nil), sources...),
		State:         DefaultState(),
		SelectionType: selectionType,
		Behaviour:     behaviour,
	}
}

// SetSources replaces the data sources, e.g. after a fetch-more grew one of
// them. Stale state is pruned on the next interaction or Refresh.
func (v *View) SetSources(sources ...DataSource) {
	v.Sources = append([]DataSource(nil), sources...)
	v.seq = nil
}

// SetSource replaces the source at index i.
func (v *View) SetSource(i int, src DataSource) {
	if i < 0 || i >= len(v.Sources) {
		return
	}
	v.Sources[i] = src
	v.seq = nil
}

// Sequence returns the flattened items.
func (v *View) Sequence() *Sequence {
	if v.seq == nil {
		v.seq = Flatten(v.Sources...)
	}
	return v.seq
}

// Controller returns a controller bound to the current state and sources.
func (v *View) Controller() *Controller {
	return NewController(v.State, v.SelectionType, v.Sequence())
}

// Update runs fn against a fresh controller, stores the result and notifies
// OnChange once.
func (v *View) Update(fn func(*Controller)) State {
	c := v.Controller()
	if fn != nil {
		fn(c)
	}
	v.State = c.State()
	if v.OnChange != nil {
		v.OnChange(v.State.Clone())
	}
	return v.State
}

// Refresh prunes the state against the current sources, notifying only when
// pruning changed something.
func (v *View) Refresh() bool {
	pruned := Prune(v.State, v.SelectionType, v.Sequence())
	if pruned.Equal(v.State) {
		return false
	}
	v.State = pruned
	if v.OnChange != nil {
		v.OnChange(v.State.Clone())
	}
	return true
}

// HandleKey routes a key event through the navigation behaviour. Keys the
// behaviour does not consume leave the state and OnChange alone.
func (v *View) HandleKey(msg tea.KeyMsg) Action {
	c := v.Controller()
	action := v.Behaviour.HandleKey(msg, c)
	if action == ActionNone {
		return action
	}
	v.State = c.State()
	if v.OnChange != nil {
		v.OnChange(v.State.Clone())
	}
	return action
}

// HandleClick routes a pointer activation on id.
func (v *View) HandleClick(id ItemID, mods Modifiers) Action {
	c := v.Controller()
	action := v.Behaviour.HandleClick(c, id, mods)
	if action == ActionNone {
		return action
	}
	v.State = c.State()
	if v.OnChange != nil {
		v.OnChange(v.State.Clone())
	}
	return action
}

// Current returns the current item, if any.
func (v *View) Current() (Item, bool) {
	return v.Sequence().Item(v.State.CurrentID)
}

// Items returns render props for every item in the flattened sequence.
func (v *View) Items() []ItemProps {
	seq := v.Sequence()
	state := Prune(v.State, v.SelectionType, seq)
	out := make([]ItemProps, 0, seq.Len())
	for i := range seq.Len() {
		out = append(out, v.props(seq, state, i))
	}
	return out
}

// SourceItems returns render props for the items of source si only, letting a
// renderer lay out each source under its own heading.
func (v *View) SourceItems(si int) []ItemProps {
	if si < 0 || si >= len(v.Sources) {
		return nil
	}
	seq := v.Sequence()
	state := Prune(v.State, v.SelectionType, seq)
	offset := seq.SourceOffset(si)
	n := v.Sources[si].Len()
	out := make([]ItemProps, 0, n)
	for i := offset; i < offset+n; i++ {
		out = append(out, v.props(seq, state, i))
	}
	return out
}

func (v *View) props(seq *Sequence, state State, i int) ItemProps {
	item := seq.At(i)
	id := item.ID
	return ItemProps{
		Item:       item,
		Index:      i,
		Source:     seq.SourceIndex(i),
		IsSelected: state.IsSelected(id),
		IsCurrent:  state.CurrentID == id,
		IsDisabled: state.IsDisabled(id),
		TriggerInteractiveSelection: func(mods Modifiers) {
			v.HandleClick(id, mods)
		},
		MarkCurrent: func() {
			v.Update(func(c *Controller) { c.MoveToItem(id) })
		},
	}
}
