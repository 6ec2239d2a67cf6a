package listview

// Sequence is the flattened, ordered concatenation of data sources.
// Ids are assumed unique across sources; when they are not, lookups resolve
// to the first occurrence.
type Sequence struct {
	items   []Item
	origin  []int
	offsets []int
	index   map[ItemID]int
}

// Flatten concatenates sources left to right in declaration order.
func Flatten(sources ...DataSource) *Sequence {
	total := 0
	for _, src := range sources {
		total += src.Len()
	}

	seq := &Sequence{
		items:   make([]Item, 0, total),
		origin:  make([]int, 0, total),
		offsets: make([]int, 0, len(sources)),
		index:   make(map[ItemID]int, total),
	}
	for si, src := range sources {
		seq.offsets = append(seq.offsets, len(seq.items))
		for _, item := range src.items {
			if _, dup := seq.index[item.ID]; !dup {
				seq.index[item.ID] = len(seq.items)
			}
			seq.items = append(seq.items, item)
			seq.origin = append(seq.origin, si)
		}
	}
	return seq
}

// Len returns the number of items.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// At returns the item at index i.
func (s *Sequence) At(i int) Item { return s.items[i] }

// Items returns the flattened items. The slice must not be modified.
func (s *Sequence) Items() []Item {
	if s == nil {
		return nil
	}
	return s.items
}

// IndexOf returns the position of id.
func (s *Sequence) IndexOf(id ItemID) (int, bool) {
	if s == nil || id == NoItem {
		return -1, false
	}
	i, ok := s.index[id]
	if !ok {
		return -1, false
	}
	return i, true
}

// Contains reports whether id resolves to an item.
func (s *Sequence) Contains(id ItemID) bool {
	_, ok := s.IndexOf(id)
	return ok
}

// Item looks up an item by id.
func (s *Sequence) Item(id ItemID) (Item, bool) {
	i, ok := s.IndexOf(id)
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}

// SourceIndex returns which data source the item at position i came from.
func (s *Sequence) SourceIndex(i int) int { return s.origin[i] }

// SourceOffset returns the position of the first item of source si.
func (s *Sequence) SourceOffset(si int) int { return s.offsets[si] }

// First returns the first navigable item.
func (s *Sequence) First() ItemID {
	if s.Len() == 0 {
		return NoItem
	}
	return s.items[0].ID
}

// Last returns the last navigable item.
func (s *Sequence) Last() ItemID {
	if s.Len() == 0 {
		return NoItem
	}
	return s.items[len(s.items)-1].ID
}

// Next returns the item after from. Without a resolvable from it returns the
// first item. At the end it wraps when cyclic and stays put otherwise.
func (s *Sequence) Next(from ItemID, cyclic bool) ItemID {
	i, ok := s.IndexOf(from)
	if !ok {
		return s.First()
	}
	if i+1 < len(s.items) {
		return s.items[i+1].ID
	}
	if cyclic {
		return s.First()
	}
	return from
}

// Previous mirrors Next. Without a resolvable from it returns the last item.
func (s *Sequence) Previous(from ItemID, cyclic bool) ItemID {
	i, ok := s.IndexOf(from)
	if !ok {
		return s.Last()
	}
	if i > 0 {
		return s.items[i-1].ID
	}
	if cyclic {
		return s.Last()
	}
	return from
}

// Between returns the inclusive sub-sequence between a and b regardless of
// their order.
func (s *Sequence) Between(a, b ItemID) ([]Item, bool) {
	ia, okA := s.IndexOf(a)
	ib, okB := s.IndexOf(b)
	if !okA || !okB {
		return nil, false
	}
	if ia > ib {
		ia, ib = ib, ia
	}
	return s.items[ia : ib+1], true
}
