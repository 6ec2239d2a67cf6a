package listview

import "slices"

// Controller applies chainable mutations to a State.
//
// Every operation is total: ids that do not resolve, or items that may not be
// selected, leave the state untouched. The controller owns a private copy of
// the state, so the caller's value is never mutated.
type Controller struct {
	seq           *Sequence
	selectionType SelectionType
	state         State
}

// NewController prunes state against seq and returns a controller for it.
func NewController(state State, selectionType SelectionType, seq *Sequence) *Controller {
	if seq == nil {
		seq = Flatten()
	}
	return &Controller{
		seq:           seq,
		selectionType: selectionType,
		state:         Prune(state, selectionType, seq),
	}
}

// Prune drops every reference that no longer resolves in seq, preserving the
// relative order of the survivors. Selected ids must also be selectable and
// enabled; SelectionNone keeps nothing selected and SelectionSingle keeps at
// most the most recent selection.
func Prune(state State, selectionType SelectionType, seq *Sequence) State {
	out := State{}

	for _, id := range state.DisabledIDs {
		if seq.Contains(id) && !slices.Contains(out.DisabledIDs, id) {
			out.DisabledIDs = append(out.DisabledIDs, id)
		}
	}

	if selectionType != SelectionNone {
		for _, id := range state.SelectedIDs {
			item, ok := seq.Item(id)
			if !ok || !item.Selectable || slices.Contains(out.DisabledIDs, id) {
				continue
			}
			if !slices.Contains(out.SelectedIDs, id) {
				out.SelectedIDs = append(out.SelectedIDs, id)
			}
		}
		if selectionType == SelectionSingle && len(out.SelectedIDs) > 1 {
			out.SelectedIDs = out.SelectedIDs[len(out.SelectedIDs)-1:]
		}
	}

	if seq.Contains(state.CurrentID) {
		out.CurrentID = state.CurrentID
	}
	if seq.Contains(state.SelectionStartID) {
		out.SelectionStartID = state.SelectionStartID
	}
	return out
}

// State returns a copy of the resulting state.
func (c *Controller) State() State { return c.state.Clone() }

// Sequence returns the flattened items the controller operates on.
func (c *Controller) Sequence() *Sequence { return c.seq }

// SelectionType returns the active selection type.
func (c *Controller) SelectionType() SelectionType { return c.selectionType }

// CurrentID returns the current navigable item.
func (c *Controller) CurrentID() ItemID { return c.state.CurrentID }

// IsSelected reports whether id is selected.
func (c *Controller) IsSelected(id ItemID) bool { return c.state.IsSelected(id) }

// IsDisabled reports whether id is disabled.
func (c *Controller) IsDisabled(id ItemID) bool { return c.state.IsDisabled(id) }

// canSelect reports whether id resolves to a selectable, enabled item.
func (c *Controller) canSelect(id ItemID) bool {
	item, ok := c.seq.Item(id)
	return ok && item.Selectable && !c.state.IsDisabled(id)
}

// SelectItem replaces the selection with id.
func (c *Controller) SelectItem(id ItemID) *Controller {
	if c.selectionType == SelectionNone || !c.canSelect(id) {
		return c
	}
	c.state.SelectedIDs = []ItemID{id}
	c.state.SelectionStartID = id
	return c
}

// AddItemToSelection appends id to the selection in multiple mode and
// behaves like SelectItem in single mode.
func (c *Controller) AddItemToSelection(id ItemID) *Controller {
	switch c.selectionType {
	case SelectionNone:
		return c
	case SelectionSingle:
		return c.SelectItem(id)
	}
	if !c.canSelect(id) {
		return c
	}
	if !c.state.IsSelected(id) {
		c.state.SelectedIDs = append(slices.Clone(c.state.SelectedIDs), id)
	}
	c.state.SelectionStartID = id
	return c
}

// RemoveItemFromSelection drops id from the selection if present.
func (c *Controller) RemoveItemFromSelection(id ItemID) *Controller {
	if !c.seq.Contains(id) || !c.state.IsSelected(id) {
		return c
	}
	c.state.SelectedIDs = slices.DeleteFunc(slices.Clone(c.state.SelectedIDs), func(s ItemID) bool {
		return s == id
	})
	return c
}

// ToggleItemSelection removes id when selected and adds it otherwise.
func (c *Controller) ToggleItemSelection(id ItemID) *Controller {
	if c.state.IsSelected(id) {
		return c.RemoveItemFromSelection(id)
	}
	return c.AddItemToSelection(id)
}

// SelectItemsInRange selects the selectable, enabled items between anchor and
// target inclusive, in sequence order. Outside multiple mode it selects target
// alone. Nothing happens unless both endpoints resolve.
func (c *Controller) SelectItemsInRange(anchor, target ItemID) *Controller {
	items, ok := c.seq.Between(anchor, target)
	if !ok {
		return c
	}
	if c.selectionType != SelectionMultiple {
		return c.SelectItem(target)
	}

	selected := make([]ItemID, 0, len(items))
	for _, item := range items {
		if item.Selectable && !c.state.IsDisabled(item.ID) {
			selected = append(selected, item.ID)
		}
	}
	c.state.SelectedIDs = selected
	c.state.SelectionStartID = anchor
	return c
}

// SelectAll selects every selectable, enabled item in multiple mode.
func (c *Controller) SelectAll() *Controller {
	if c.selectionType != SelectionMultiple || c.seq.Len() == 0 {
		return c
	}
	return c.SelectItemsInRange(c.seq.First(), c.seq.Last())
}

// ClearSelection empties the selection.
func (c *Controller) ClearSelection() *Controller {
	c.state.SelectedIDs = nil
	return c
}

// SelectionStartID returns the anchor for range selection: the last item
// selected singly or added, falling back to the current item.
func (c *Controller) SelectionStartID() ItemID {
	if c.seq.Contains(c.state.SelectionStartID) {
		return c.state.SelectionStartID
	}
	return c.state.CurrentID
}

// ToggleItemDisabled flips the disabled flag of id. A disabled item is removed
// from the selection; focus is left where it is.
func (c *Controller) ToggleItemDisabled(id ItemID) *Controller {
	if !c.seq.Contains(id) {
		return c
	}
	if c.state.IsDisabled(id) {
		c.state.DisabledIDs = slices.DeleteFunc(slices.Clone(c.state.DisabledIDs), func(d ItemID) bool {
			return d == id
		})
		return c
	}
	c.state.DisabledIDs = append(slices.Clone(c.state.DisabledIDs), id)
	return c.RemoveItemFromSelection(id)
}

// MoveToItem makes id the current navigable item without touching the
// selection.
func (c *Controller) MoveToItem(id ItemID) *Controller {
	if !c.seq.Contains(id) {
		return c
	}
	c.state.CurrentID = id
	return c
}

// MoveToNext moves focus forward.
func (c *Controller) MoveToNext(cyclic bool) *Controller {
	return c.MoveToItem(c.seq.Next(c.state.CurrentID, cyclic))
}

// MoveToPrevious moves focus backward.
func (c *Controller) MoveToPrevious(cyclic bool) *Controller {
	return c.MoveToItem(c.seq.Previous(c.state.CurrentID, cyclic))
}

// MoveToFirst focuses the first item.
func (c *Controller) MoveToFirst() *Controller {
	return c.MoveToItem(c.seq.First())
}

// MoveToLast focuses the last item.
func (c *Controller) MoveToLast() *Controller {
	return c.MoveToItem(c.seq.Last())
}
