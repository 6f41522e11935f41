package queue

// Index maps every group to the current positions of its entries which have
// not been placed yet. Positions in a group's list are always ascending.
//
// An Index is owned by exactly one run. It is not safe for concurrent use.
type Index struct {
	order     []GroupKey
	positions map[GroupKey][]int
	remaining int
}

// NewIndex builds an Index out of a snapshot. Positions are added in ascending
// order and groups are remembered in the order they were first seen. An empty
// snapshot results in an empty Index.
func NewIndex(snap Snapshot) *Index {
	idx := &Index{
		positions: make(map[GroupKey][]int),
		remaining: len(snap),
	}

	for pos, key := range snap {
		if _, ok := idx.positions[key]; !ok {
			idx.order = append(idx.order, key)
		}
		idx.positions[key] = append(idx.positions[key], pos)
	}

	return idx
}

// Groups returns all groups in the order of their first appearance, including
// the ones which have no entries left.
func (idx *Index) Groups() []GroupKey {
	return append([]GroupKey(nil), idx.order...)
}

// Active returns the groups which still have unplaced entries.
func (idx *Index) Active() []GroupKey {
	var active []GroupKey
	for _, key := range idx.order {
		if len(idx.positions[key]) > 0 {
			active = append(active, key)
		}
	}
	return active
}

// Remaining returns a copy of the current positions of the unplaced entries
// of the group `key`.
func (idx *Index) Remaining(key GroupKey) []int {
	return append([]int(nil), idx.positions[key]...)
}

// Len is the number of entries which are yet to be placed.
func (idx *Index) Len() int {
	return idx.remaining
}

// Empty reports whether every entry has been placed.
func (idx *Index) Empty() bool {
	return idx.remaining == 0
}

// front returns the current position of the earliest unplaced entry of `key`.
func (idx *Index) front(key GroupKey) (int, bool) {
	list := idx.positions[key]
	if len(list) == 0 {
		return 0, false
	}
	return list[0], true
}

// pop removes the earliest unplaced entry of `key`. The group's list is left
// empty but present once exhausted.
func (idx *Index) pop(key GroupKey) {
	list := idx.positions[key]
	if len(list) == 0 {
		return
	}
	idx.positions[key] = list[1:]
	idx.remaining--
}
