package listview

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestBehaviour(orientation Orientation, cyclic bool, strategy TypeAheadStrategy) (*Behaviour, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := NewBehaviour(orientation, cyclic, strategy, 500*time.Millisecond)
	b.SetClock(clock.Now)
	return b, clock
}

func TestBehaviourOrientationKeyMapping(t *testing.T) {
	seq := products("A", "B", "C")

	tests := []struct {
		name        string
		orientation Orientation
		key         tea.KeyType
		want        ItemID
		wantAction  Action
	}{
		{name: "vertical down", orientation: Vertical, key: tea.KeyDown, want: "C", wantAction: ActionMoved},
		{name: "vertical up", orientation: Vertical, key: tea.KeyUp, want: "A", wantAction: ActionMoved},
		{name: "vertical ignores right", orientation: Vertical, key: tea.KeyRight, want: "B", wantAction: ActionNone},
		{name: "horizontal right", orientation: Horizontal, key: tea.KeyRight, want: "C", wantAction: ActionMoved},
		{name: "horizontal left", orientation: Horizontal, key: tea.KeyLeft, want: "A", wantAction: ActionMoved},
		{name: "horizontal ignores down", orientation: Horizontal, key: tea.KeyDown, want: "B", wantAction: ActionNone},
		{name: "home", orientation: Horizontal, key: tea.KeyHome, want: "A", wantAction: ActionMoved},
		{name: "end", orientation: Vertical, key: tea.KeyEnd, want: "C", wantAction: ActionMoved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBehaviour(tt.orientation, false, DefaultTypeAhead)
			c := NewController(State{CurrentID: "B"}, SelectionMultiple, seq)

			action := b.HandleKey(tea.KeyMsg{Type: tt.key}, c)

			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.want, c.CurrentID())
		})
	}
}

func TestBehaviourCyclicNavigation(t *testing.T) {
	seq := products("A", "B", "C")

	cyclic, _ := newTestBehaviour(Vertical, true, NoTypeAhead)
	c := NewController(State{CurrentID: "C"}, SelectionMultiple, seq)
	cyclic.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, c)
	assert.Equal(t, ItemID("A"), c.CurrentID())
	cyclic.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, c)
	assert.Equal(t, ItemID("C"), c.CurrentID())

	bounded, _ := newTestBehaviour(Vertical, false, NoTypeAhead)
	c = NewController(State{CurrentID: "C"}, SelectionMultiple, seq)
	bounded.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, c)
	assert.Equal(t, ItemID("C"), c.CurrentID())
}

func TestBehaviourDisabledItemsStayNavigable(t *testing.T) {
	seq := products("A", "B", "C")
	b, _ := newTestBehaviour(Vertical, false, NoTypeAhead)
	c := NewController(State{CurrentID: "A", DisabledIDs: ids("B")}, SelectionMultiple, seq)

	b.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, c)
	assert.Equal(t, ItemID("B"), c.CurrentID())

	b.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, c)
	assert.Empty(t, c.State().SelectedIDs, "disabled item must not be selected")
}

func TestBehaviourShiftExtendsRange(t *testing.T) {
	seq := products("A", "B", "C", "D")
	b, _ := newTestBehaviour(Vertical, false, NoTypeAhead)
	c := NewController(DefaultState(), SelectionMultiple, seq)
	c.SelectItem("B").MoveToItem("B")

	b.HandleKey(tea.KeyMsg{Type: tea.KeyShiftDown}, c)
	b.HandleKey(tea.KeyMsg{Type: tea.KeyShiftDown}, c)
	assert.Equal(t, ids("B", "C", "D"), c.State().SelectedIDs)
	assert.Equal(t, ItemID("D"), c.CurrentID())

	b.HandleKey(tea.KeyMsg{Type: tea.KeyShiftHome}, c)
	assert.Equal(t, ids("A", "B"), c.State().SelectedIDs)
	assert.Equal(t, ItemID("A"), c.CurrentID())
}

func TestBehaviourEnterActivatesAndSelects(t *testing.T) {
	seq := Flatten(SelectableValues("p", []string{"A", "B"}), Sentinel("more"))
	b, _ := newTestBehaviour(Vertical, false, DefaultTypeAhead)

	c := NewController(State{CurrentID: "B"}, SelectionSingle, seq)
	assert.Equal(t, ActionActivated, b.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, c))
	assert.Equal(t, ids("B"), c.State().SelectedIDs)

	c.MoveToItem("more")
	assert.Equal(t, ActionActivated, b.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, c))
	assert.Equal(t, ids("B"), c.State().SelectedIDs, "sentinel activation keeps selection")
}

func TestBehaviourSpaceAndCtrlSpaceToggle(t *testing.T) {
	seq := products("A", "B")
	b, _ := newTestBehaviour(Vertical, false, DefaultTypeAhead)
	c := NewController(State{CurrentID: "A", SelectedIDs: ids("B")}, SelectionMultiple, seq)

	assert.Equal(t, ActionSelected, b.HandleKey(tea.KeyMsg{Type: tea.KeySpace}, c))
	assert.Equal(t, ids("B", "A"), c.State().SelectedIDs)

	assert.Equal(t, ActionSelected, b.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlAt}, c))
	assert.Equal(t, ids("B"), c.State().SelectedIDs)
}

func TestBehaviourToggleInNoneModeIsNotConsumed(t *testing.T) {
	seq := products("A", "B")
	b, _ := newTestBehaviour(Vertical, false, DefaultTypeAhead)
	c := NewController(State{CurrentID: "A"}, SelectionNone, seq)

	assert.Equal(t, ActionNone, b.HandleKey(tea.KeyMsg{Type: tea.KeySpace}, c))
	assert.Equal(t, ActionNone, b.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlAt}, c))
	assert.Empty(t, c.State().SelectedIDs)
}

func TestBehaviourSpaceWithoutTypeAheadIsNotConsumed(t *testing.T) {
	seq := products("A", "B")
	b, _ := newTestBehaviour(Vertical, false, NoTypeAhead)
	c := NewController(State{CurrentID: "A"}, SelectionMultiple, seq)

	assert.Equal(t, ActionNone, b.HandleKey(tea.KeyMsg{Type: tea.KeySpace}, c))
	assert.Empty(t, c.State().SelectedIDs)
}

func TestBehaviourCtrlASelectsAll(t *testing.T) {
	seq := products("A", "B", "C")
	b, _ := newTestBehaviour(Vertical, false, NoTypeAhead)

	c := NewController(DefaultState(), SelectionMultiple, seq)
	assert.Equal(t, ActionSelected, b.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlA}, c))
	assert.Equal(t, ids("A", "B", "C"), c.State().SelectedIDs)

	single := NewController(DefaultState(), SelectionSingle, seq)
	assert.Equal(t, ActionNone, b.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlA}, single))
}

func TestBehaviourTypeAheadScenario(t *testing.T) {
	seq := products("Apple", "Recommended", "Red")
	b, clock := newTestBehaviour(Vertical, false, DefaultTypeAhead)
	c := NewController(State{CurrentID: "Apple"}, SelectionMultiple, seq)

	require.Equal(t, ActionTypeAhead, b.HandleKey(runes("r"), c))
	assert.Equal(t, ItemID("Recommended"), c.CurrentID())

	clock.Advance(100 * time.Millisecond)
	b.HandleKey(runes("e"), c)
	assert.Equal(t, "re", b.Buffer().Query())
	assert.Equal(t, ItemID("Recommended"), c.CurrentID())

	clock.Advance(100 * time.Millisecond)
	b.HandleKey(runes("c"), c)
	assert.Equal(t, "rec", b.Buffer().Query())
	assert.Equal(t, ItemID("Recommended"), c.CurrentID())

	clock.Advance(time.Second)
	b.HandleKey(runes("a"), c)
	assert.Equal(t, "a", b.Buffer().Query(), "idle timeout starts a fresh query")
	assert.Equal(t, ItemID("Apple"), c.CurrentID())
}

func TestBehaviourRepeatedFirstLetterAdvances(t *testing.T) {
	seq := products("Apple", "Recommended", "Red")
	b, clock := newTestBehaviour(Vertical, true, DefaultTypeAhead)
	c := NewController(State{CurrentID: "Recommended"}, SelectionMultiple, seq)

	b.HandleKey(runes("r"), c)
	assert.Equal(t, ItemID("Red"), c.CurrentID())

	clock.Advance(time.Second)
	b.HandleKey(runes("r"), c)
	assert.Equal(t, ItemID("Recommended"), c.CurrentID())
}

func TestBehaviourNavigationKeysResetTypeAhead(t *testing.T) {
	seq := products("Apple", "Recommended", "Red")
	b, _ := newTestBehaviour(Vertical, false, DefaultTypeAhead)
	c := NewController(DefaultState(), SelectionMultiple, seq)

	b.HandleKey(runes("re"), c)
	require.Equal(t, "re", b.Buffer().Query())

	b.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, c)
	assert.Equal(t, "", b.Buffer().Query())

	b.HandleKey(runes("x"), c)
	b.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, c)
	assert.Equal(t, "", b.Buffer().Query())
}

func TestBehaviourSpaceExtendsActiveQuery(t *testing.T) {
	seq := products("Red apple", "Red berry")
	b, _ := newTestBehaviour(Vertical, false, DefaultTypeAhead)
	c := NewController(DefaultState(), SelectionMultiple, seq)

	b.HandleKey(runes("red"), c)
	assert.Equal(t, ActionTypeAhead, b.HandleKey(tea.KeyMsg{Type: tea.KeySpace}, c))
	b.HandleKey(runes("b"), c)

	assert.Equal(t, "red b", b.Buffer().Query())
	assert.Equal(t, ItemID("Red berry"), c.CurrentID())
	assert.Empty(t, c.State().SelectedIDs)
}

func TestBehaviourDisabledTypeAheadLeavesCharacters(t *testing.T) {
	seq := products("Apple", "Recommended")
	b, _ := newTestBehaviour(Vertical, false, NoTypeAhead)
	c := NewController(State{CurrentID: "Apple"}, SelectionMultiple, seq)

	assert.Equal(t, ActionNone, b.HandleKey(runes("r"), c))
	assert.Equal(t, ItemID("Apple"), c.CurrentID())
	assert.Equal(t, "", b.Buffer().Query())
}

func TestBehaviourHandleClickModifiers(t *testing.T) {
	seq := products("A", "B", "C", "D")
	b, _ := newTestBehaviour(Vertical, false, NoTypeAhead)
	c := NewController(DefaultState(), SelectionMultiple, seq)

	b.HandleClick(c, "B", Modifiers{})
	assert.Equal(t, ids("B"), c.State().SelectedIDs)
	assert.Equal(t, ItemID("B"), c.CurrentID())

	b.HandleClick(c, "D", Modifiers{Ctrl: true})
	assert.Equal(t, ids("B", "D"), c.State().SelectedIDs)

	b.HandleClick(c, "A", Modifiers{Shift: true})
	assert.Equal(t, ids("A", "B", "C", "D"), c.State().SelectedIDs)

	assert.Equal(t, ActionNone, b.HandleClick(c, "ghost", Modifiers{}))
}
