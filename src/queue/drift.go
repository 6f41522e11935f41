package queue

// applyMove corrects every recorded position after the entry which was at
// `from` has been moved to `to`. The moved entry must already be removed from
// the index.
//
// A move is a removal at `from` followed by an insertion at `to`, where `to`
// is in the numbering after the removal. So positions after `from` go down by
// one and then positions at or after `to` go up by one.
func (idx *Index) applyMove(from, to int) {
	if from == to {
		return
	}

	for _, key := range idx.order {
		list := idx.positions[key]
		for i, pos := range list {
			list[i] = shiftPosition(pos, from, to)
		}
	}
}

func shiftPosition(pos, from, to int) int {
	if pos > from {
		pos--
	}
	if pos >= to {
		pos++
	}
	return pos
}
