package listview

import "fmt"

// Item is one logical entry of a data source.
type Item struct {
	ID         ItemID
	Selectable bool
	// TypeAheadText is matched by type-ahead search; empty means the item
	// never matches.
	TypeAheadText string
	// Value is the consumer's original value, carried for rendering.
	Value any
}

// DataSource is an ordered, immutable sequence of items.
type DataSource struct {
	name  string
	items []Item
}

// Options tells NewDataSource how to project a value into an Item.
type Options[T any] struct {
	IDFunc            func(T) ItemID
	TypeAheadTextFunc func(T) string
	IsSelectable      func(T) bool
}

// NewDataSource builds a data source from values using the projections in
// opts. A nil IDFunc falls back to fmt.Sprint of the value; a nil
// IsSelectable makes every item selectable.
func NewDataSource[T any](name string, values []T, opts Options[T]) DataSource {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		item := Item{Value: v, Selectable: true}
		if opts.IDFunc != nil {
			item.ID = opts.IDFunc(v)
		} else {
			item.ID = ItemID(fmt.Sprint(v))
		}
		if opts.TypeAheadTextFunc != nil {
			item.TypeAheadText = opts.TypeAheadTextFunc(v)
		}
		if opts.IsSelectable != nil {
			item.Selectable = opts.IsSelectable(v)
		}
		items = append(items, item)
	}
	return DataSource{name: name, items: items}
}

// FromItems wraps already projected items.
func FromItems(name string, items []Item) DataSource {
	return DataSource{name: name, items: append([]Item(nil), items...)}
}

// SelectableValues builds a source of selectable strings whose identity and
// type-ahead text are the string itself.
func SelectableValues(name string, values []string) DataSource {
	return NewDataSource(name, values, Options[string]{
		IDFunc:            func(v string) ItemID { return ItemID(v) },
		TypeAheadTextFunc: func(v string) string { return v },
	})
}

// NavigatableValues builds a source of items that can be focused but never
// selected, such as "fetch more" sentinels.
func NavigatableValues(name string, values []string) DataSource {
	return NewDataSource(name, values, Options[string]{
		IDFunc:       func(v string) ItemID { return ItemID(v) },
		IsSelectable: func(string) bool { return false },
	})
}

// Sentinel builds a single-item, non-selectable data source.
func Sentinel(id ItemID) DataSource {
	return DataSource{name: string(id), items: []Item{{ID: id}}}
}

// Name returns the source name.
func (d DataSource) Name() string { return d.name }

// Len returns the number of items.
func (d DataSource) Len() int { return len(d.items) }

// At returns the item at index i.
func (d DataSource) At(i int) Item { return d.items[i] }

// Items returns a copy of the items.
func (d DataSource) Items() []Item {
	return append([]Item(nil), d.items...)
}
