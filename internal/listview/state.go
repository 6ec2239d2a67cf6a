// Package listview implements the selection and navigation engine behind
// lazylist's list and grid widgets.
//
// The engine is a set of pure value transformations: a Controller takes the
// current State plus the flattened item Sequence and produces a new State.
// It performs no I/O and keeps no state of its own; the consumer owns the
// State and hands it back on every interaction.
package listview

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ItemID identifies an item within a flattened sequence.
type ItemID string

// NoItem is the empty ItemID, used when no item is current or anchored.
const NoItem ItemID = ""

// IntID converts a numeric identity into an ItemID.
func IntID(n int) ItemID {
	return ItemID(strconv.Itoa(n))
}

// SelectionType controls which operations may change the selected set.
type SelectionType int

// Selection types.
const (
	SelectionNone SelectionType = iota
	SelectionSingle
	SelectionMultiple
)

// String returns the configuration name of the selection type.
func (s SelectionType) String() string {
	switch s {
	case SelectionNone:
		return "none"
	case SelectionSingle:
		return "single"
	case SelectionMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// SelectionTypeNames lists the accepted selection type names.
func SelectionTypeNames() []string {
	return []string{"none", "single", "multiple"}
}

// ParseSelectionType parses a selection type name.
func ParseSelectionType(name string) (SelectionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return SelectionNone, nil
	case "single":
		return SelectionSingle, nil
	case "multiple", "multi":
		return SelectionMultiple, nil
	}
	return SelectionNone, fmt.Errorf("unknown selection type %q", name)
}

// Orientation decides which arrow keys move focus forward and backward.
type Orientation int

// Navigation orientations.
const (
	Vertical Orientation = iota
	Horizontal
)

// String returns the configuration name of the orientation.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// OrientationNames lists the accepted orientation names.
func OrientationNames() []string {
	return []string{"vertical", "horizontal"}
}

// ParseOrientation parses an orientation name.
func ParseOrientation(name string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown orientation %q", name)
}

// State is an immutable snapshot of a list view.
//
// SelectedIDs is an ordered set. SelectionStartID is the anchor used for
// range selection; it is carried with the rest of the state so ranges can be
// extended across separate interactions.
type State struct {
	SelectedIDs      []ItemID
	CurrentID        ItemID
	DisabledIDs      []ItemID
	SelectionStartID ItemID
}

// DefaultState returns an empty state: nothing selected, current or disabled.
func DefaultState() State {
	return State{}
}

// IsSelected reports whether id is in the selected set.
func (s State) IsSelected(id ItemID) bool {
	return slices.Contains(s.SelectedIDs, id)
}

// IsDisabled reports whether id is in the disabled set.
func (s State) IsDisabled(id ItemID) bool {
	return slices.Contains(s.DisabledIDs, id)
}

// Clone returns a deep copy so callers can never alias another state's slices.
func (s State) Clone() State {
	return State{
		SelectedIDs:      slices.Clone(s.SelectedIDs),
		CurrentID:        s.CurrentID,
		DisabledIDs:      slices.Clone(s.DisabledIDs),
		SelectionStartID: s.SelectionStartID,
	}
}

// Equal reports whether two states are identical, including selection order.
func (s State) Equal(other State) bool {
	return s.CurrentID == other.CurrentID &&
		s.SelectionStartID == other.SelectionStartID &&
		slices.Equal(s.SelectedIDs, other.SelectedIDs) &&
		slices.Equal(s.DisabledIDs, other.DisabledIDs)
}
