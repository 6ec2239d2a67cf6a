package listview

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func products(names ...string) *Sequence {
	return Flatten(SelectableValues("products", names))
}

func ids(values ...string) []ItemID {
	out := make([]ItemID, 0, len(values))
	for _, v := range values {
		out = append(out, ItemID(v))
	}
	return out
}

func TestControllerScenarioMultipleSelection(t *testing.T) {
	seq := products("P1", "P2", "P3")
	c := NewController(DefaultState(), SelectionMultiple, seq)

	c.SelectItem("P1")
	assert.Equal(t, ids("P1"), c.State().SelectedIDs)

	c.AddItemToSelection("P3")
	assert.Equal(t, ids("P1", "P3"), c.State().SelectedIDs)

	c.SelectItemsInRange("P1", "P3")
	assert.Equal(t, ids("P1", "P2", "P3"), c.State().SelectedIDs)
}

func TestControllerSelectDisabledItemIsNoop(t *testing.T) {
	seq := products("A", "B", "C")
	state := State{DisabledIDs: ids("A")}
	c := NewController(state, SelectionMultiple, seq)

	c.SelectItem("A")

	assert.Empty(t, c.State().SelectedIDs)
	assert.Equal(t, ids("A"), c.State().DisabledIDs)
}

func TestControllerSingleModeAddReplaces(t *testing.T) {
	seq := products("X", "Y", "Z")
	c := NewController(DefaultState(), SelectionSingle, seq)

	c.AddItemToSelection("X").AddItemToSelection("Y")

	assert.Equal(t, ids("Y"), c.State().SelectedIDs)
}

func TestControllerNoneModeIgnoresSelection(t *testing.T) {
	seq := products("X", "Y")
	c := NewController(DefaultState(), SelectionNone, seq)

	c.SelectItem("X").AddItemToSelection("Y").ToggleItemSelection("X").SelectItemsInRange("X", "Y")

	assert.Empty(t, c.State().SelectedIDs)
}

func TestControllerUnknownIDsAreNoops(t *testing.T) {
	seq := products("A", "B")
	start := State{SelectedIDs: ids("A"), CurrentID: "A"}
	c := NewController(start, SelectionMultiple, seq)
	before := c.State()

	c.SelectItem("ghost").
		AddItemToSelection("ghost").
		RemoveItemFromSelection("ghost").
		ToggleItemSelection("ghost").
		ToggleItemDisabled("ghost").
		MoveToItem("ghost").
		SelectItemsInRange("A", "ghost").
		SelectItemsInRange("ghost", "B")

	assert.True(t, before.Equal(c.State()), "expected %+v, got %+v", before, c.State())
}

func TestControllerNonSelectableItems(t *testing.T) {
	seq := Flatten(
		SelectableValues("products", []string{"P1", "P2"}),
		Sentinel("fetch-more"),
		SelectableValues("others", []string{"O1"}),
	)
	c := NewController(DefaultState(), SelectionMultiple, seq)

	c.SelectItem("fetch-more")
	assert.Empty(t, c.State().SelectedIDs)

	c.MoveToItem("fetch-more")
	assert.Equal(t, ItemID("fetch-more"), c.CurrentID())

	c.SelectItemsInRange("P2", "O1")
	assert.Equal(t, ids("P2", "O1"), c.State().SelectedIDs, "sentinel must be skipped in ranges")
}

func TestControllerSelectIdempotent(t *testing.T) {
	seq := products("A", "B", "C")
	once := NewController(DefaultState(), SelectionMultiple, seq).SelectItem("B").State()
	twice := NewController(DefaultState(), SelectionMultiple, seq).SelectItem("B").SelectItem("B").State()

	assert.True(t, once.Equal(twice))
}

func TestControllerAddIsIdempotentAndPreservesOrder(t *testing.T) {
	seq := products("A", "B", "C")
	c := NewController(DefaultState(), SelectionMultiple, seq)

	c.AddItemToSelection("C").AddItemToSelection("A").AddItemToSelection("C")

	assert.Equal(t, ids("C", "A"), c.State().SelectedIDs)
}

func TestControllerToggleTwiceRestoresSelection(t *testing.T) {
	seq := products("A", "B", "C", "D")
	for _, target := range []ItemID{"A", "B", "C", "D"} {
		t.Run(string(target), func(t *testing.T) {
			start := State{SelectedIDs: ids("B", "D")}
			c := NewController(start, SelectionMultiple, seq)

			c.ToggleItemSelection(target).ToggleItemSelection(target)

			assert.ElementsMatch(t, start.SelectedIDs, c.State().SelectedIDs)
		})
	}
}

func TestControllerRangeIsDirectionAgnostic(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	seq := products(names...)
	disabled := State{DisabledIDs: ids("C")}

	for _, a := range names {
		for _, b := range names {
			forward := NewController(disabled, SelectionMultiple, seq).SelectItemsInRange(ItemID(a), ItemID(b)).State()
			backward := NewController(disabled, SelectionMultiple, seq).SelectItemsInRange(ItemID(b), ItemID(a)).State()
			assert.Equal(t, forward.SelectedIDs, backward.SelectedIDs, "range %s..%s", a, b)
			assert.NotContains(t, forward.SelectedIDs, ItemID("C"))
		}
	}
}

func TestControllerRangeSameEndpoints(t *testing.T) {
	seq := products("A", "B", "C")
	c := NewController(State{SelectedIDs: ids("A", "C")}, SelectionMultiple, seq)

	c.SelectItemsInRange("B", "B")

	assert.Equal(t, ids("B"), c.State().SelectedIDs)
}

func TestControllerRangeDegradesOutsideMultiple(t *testing.T) {
	seq := products("A", "B", "C")
	c := NewController(DefaultState(), SelectionSingle, seq)

	c.SelectItemsInRange("A", "C")

	assert.Equal(t, ids("C"), c.State().SelectedIDs)
}

func TestControllerSelectionStartID(t *testing.T) {
	seq := products("A", "B", "C", "D")
	c := NewController(DefaultState(), SelectionMultiple, seq)
	assert.Equal(t, NoItem, c.SelectionStartID())

	c.MoveToItem("C")
	assert.Equal(t, ItemID("C"), c.SelectionStartID(), "falls back to current item")

	c.SelectItem("B").MoveToItem("B")
	assert.Equal(t, ItemID("B"), c.SelectionStartID())

	c.SelectItemsInRange(c.SelectionStartID(), "D").MoveToItem("D")
	assert.Equal(t, ItemID("B"), c.SelectionStartID(), "range keeps its anchor")
	assert.Equal(t, ids("B", "C", "D"), c.State().SelectedIDs)

	c.SelectItemsInRange(c.SelectionStartID(), "A")
	assert.Equal(t, ids("A", "B"), c.State().SelectedIDs)
}

func TestControllerDisablingRemovesFromSelection(t *testing.T) {
	seq := products("A", "B", "C")
	c := NewController(State{SelectedIDs: ids("A", "B"), CurrentID: "B"}, SelectionMultiple, seq)

	wasDisabled := c.IsDisabled("B")
	c.ToggleItemDisabled("B")

	require.False(t, wasDisabled)
	assert.True(t, c.IsDisabled("B"))
	assert.Equal(t, ids("A"), c.State().SelectedIDs)
	assert.Equal(t, ItemID("B"), c.CurrentID(), "disabling keeps focus")

	c.ToggleItemDisabled("B")
	assert.False(t, c.IsDisabled("B"))
	assert.Equal(t, ids("A"), c.State().SelectedIDs, "enabling does not reselect")
}

func TestControllerDoesNotMutateInput(t *testing.T) {
	seq := products("A", "B", "C")
	input := State{SelectedIDs: ids("A", "B"), DisabledIDs: ids("C")}
	snapshot := input.Clone()

	NewController(input, SelectionMultiple, seq).
		RemoveItemFromSelection("A").
		AddItemToSelection("B").
		ToggleItemDisabled("C").
		ToggleItemDisabled("B")

	assert.True(t, snapshot.Equal(input))
}

func TestPruneDropsStaleIDsPreservingOrder(t *testing.T) {
	large := products("A", "B", "C", "D", "E")
	c := NewController(DefaultState(), SelectionMultiple, large)
	state := c.SelectItemsInRange("A", "E").MoveToItem("E").ToggleItemDisabled("D").State()
	require.Equal(t, ids("A", "B", "C", "E"), state.SelectedIDs)

	shrunk := products("A", "C", "D")
	pruned := NewController(state, SelectionMultiple, shrunk).State()

	assert.Equal(t, ids("A", "C"), pruned.SelectedIDs)
	assert.Equal(t, ids("D"), pruned.DisabledIDs)
	assert.Equal(t, NoItem, pruned.CurrentID)
	assert.Equal(t, ItemID("A"), pruned.SelectionStartID)
}

func TestPruneBySelectionType(t *testing.T) {
	seq := products("A", "B", "C")
	state := State{SelectedIDs: ids("A", "C")}

	assert.Equal(t, ids("C"), Prune(state, SelectionSingle, seq).SelectedIDs)
	assert.Empty(t, Prune(state, SelectionNone, seq).SelectedIDs)
	assert.Equal(t, ids("A", "C"), Prune(state, SelectionMultiple, seq).SelectedIDs)
}

func TestControllerNavigation(t *testing.T) {
	seq := products("A", "B", "C")

	tests := []struct {
		name   string
		start  ItemID
		cyclic bool
		move   func(*Controller) *Controller
		want   ItemID
	}{
		{name: "next from nothing", start: NoItem, move: func(c *Controller) *Controller { return c.MoveToNext(false) }, want: "A"},
		{name: "previous from nothing", start: NoItem, move: func(c *Controller) *Controller { return c.MoveToPrevious(false) }, want: "C"},
		{name: "next clamps", start: "C", move: func(c *Controller) *Controller { return c.MoveToNext(false) }, want: "C"},
		{name: "next wraps", start: "C", cyclic: true, move: func(c *Controller) *Controller { return c.MoveToNext(true) }, want: "A"},
		{name: "previous clamps", start: "A", move: func(c *Controller) *Controller { return c.MoveToPrevious(false) }, want: "A"},
		{name: "previous wraps", start: "A", cyclic: true, move: func(c *Controller) *Controller { return c.MoveToPrevious(true) }, want: "C"},
		{name: "first", start: "B", move: (*Controller).MoveToFirst, want: "A"},
		{name: "last", start: "B", move: (*Controller).MoveToLast, want: "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(State{CurrentID: tt.start}, SelectionMultiple, seq)
			assert.Equal(t, tt.want, tt.move(c).CurrentID())
		})
	}
}

func TestControllerSelectAllAndClear(t *testing.T) {
	seq := Flatten(SelectableValues("a", []string{"A", "B"}), Sentinel("more"), SelectableValues("b", []string{"C"}))
	c := NewController(State{DisabledIDs: ids("B")}, SelectionMultiple, seq)

	c.SelectAll()
	assert.Equal(t, ids("A", "C"), c.State().SelectedIDs)

	c.ClearSelection()
	assert.Empty(t, c.State().SelectedIDs)

	single := NewController(DefaultState(), SelectionSingle, seq).SelectAll()
	assert.Empty(t, single.State().SelectedIDs)
}

// TestControllerStateStaysConsistentUnderRandomOperations drives the controller with
// random operations over a sequence that grows and shrinks, checking that
// every reachable state only references live, selectable, enabled items.
func TestControllerStateStaysConsistentUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) //nolint:gosec
	universe := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	types := []SelectionType{SelectionNone, SelectionSingle, SelectionMultiple}

	randomSequence := func() *Sequence {
		n := 1 + rng.Intn(len(universe))
		first := SelectableValues("first", universe[:n/2])
		rest := SelectableValues("rest", universe[n/2:n])
		return Flatten(first, Sentinel("more"), rest)
	}
	randomID := func() ItemID {
		if rng.Intn(10) == 0 {
			return "ghost"
		}
		if rng.Intn(10) == 0 {
			return "more"
		}
		return ItemID(universe[rng.Intn(len(universe))])
	}

	state := DefaultState()
	for step := range 2000 {
		seq := randomSequence()
		selectionType := types[rng.Intn(len(types))]
		c := NewController(state, selectionType, seq)

		for range 1 + rng.Intn(4) {
			switch rng.Intn(9) {
			case 0:
				c.SelectItem(randomID())
			case 1:
				c.AddItemToSelection(randomID())
			case 2:
				c.RemoveItemFromSelection(randomID())
			case 3:
				c.ToggleItemSelection(randomID())
			case 4:
				c.SelectItemsInRange(c.SelectionStartID(), randomID())
			case 5:
				c.ToggleItemDisabled(randomID())
			case 6:
				c.MoveToItem(randomID())
			case 7:
				c.MoveToNext(rng.Intn(2) == 0)
			case 8:
				c.SelectAll()
			}
		}

		state = c.State()
		for _, id := range state.SelectedIDs {
			item, ok := seq.Item(id)
			require.True(t, ok, "step %d: selected %q not in sequence", step, id)
			require.True(t, item.Selectable, "step %d: selected %q not selectable", step, id)
			require.False(t, state.IsDisabled(id), "step %d: selected %q is disabled", step, id)
		}
		for _, id := range state.DisabledIDs {
			require.True(t, seq.Contains(id), "step %d: disabled %q not in sequence", step, id)
		}
		if state.CurrentID != NoItem {
			require.True(t, seq.Contains(state.CurrentID), "step %d: current %q not in sequence", step, state.CurrentID)
		}
		switch selectionType {
		case SelectionNone:
			require.Empty(t, state.SelectedIDs, "step %d", step)
		case SelectionSingle:
			require.LessOrEqual(t, len(state.SelectedIDs), 1, "step %d", step)
		}
	}
}
