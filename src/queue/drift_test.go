package queue

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplyMoveTwoEntriesToFront walks through moving both entries of group B
// of [A,A,A,B,B] to the front and checks the positions of A after each move.
func TestApplyMoveTwoEntriesToFront(t *testing.T) {
	idx := NewIndex(Snapshot{"A", "A", "A", "B", "B"})

	from, ok := idx.front("B")
	require.True(t, ok)
	require.Equal(t, 3, from)

	idx.pop("B")
	idx.applyMove(from, 0)
	assert.Equal(t, []int{1, 2, 3}, idx.Remaining("A"))
	assert.Equal(t, []int{4}, idx.Remaining("B"))

	from, _ = idx.front("B")
	idx.pop("B")
	idx.applyMove(from, 1)
	assert.Equal(t, []int{2, 3, 4}, idx.Remaining("A"))
	assert.Empty(t, idx.Remaining("B"))
	assert.Equal(t, 3, idx.Len())
}

func TestShiftPosition(t *testing.T) {
	tests := []struct {
		pos, from, to int
		expected      int
	}{
		{pos: 0, from: 3, to: 0, expected: 1},
		{pos: 2, from: 3, to: 0, expected: 3},
		{pos: 4, from: 3, to: 0, expected: 4},
		{pos: 1, from: 3, to: 2, expected: 1},
		{pos: 2, from: 0, to: 4, expected: 1},
		{pos: 5, from: 0, to: 4, expected: 5},
		{pos: 4, from: 0, to: 4, expected: 3},
		{pos: 4, from: 1, to: 3, expected: 4},
		{pos: 3, from: 1, to: 3, expected: 2},
	}

	for _, test := range tests {
		name := fmt.Sprintf("%d from %d to %d", test.pos, test.from, test.to)
		t.Run(name, func(t *testing.T) {
			actual := shiftPosition(test.pos, test.from, test.to)
			assert.Equal(t, test.expected, actual)
		})
	}
}

// TestApplyMoveMatchesRealMoves compares the corrected index against a slice on
// which the same moves are really done. Destinations are random so moves go
// in both directions.
func TestApplyMoveMatchesRealMoves(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		rnd := rand.New(rand.NewPCG(seed, seed*7))

		var (
			size  = 1 + rnd.IntN(30)
			snap  = make(Snapshot, size)
			live  = make([]int, size)
			keyOf = make(map[int]GroupKey, size)
		)
		for i := range snap {
			snap[i] = GroupKey(fmt.Sprintf("g%d", rnd.IntN(4)))
			live[i] = i
			keyOf[i] = snap[i]
		}

		idx := NewIndex(snap)
		placed := make(map[int]bool)

		for !idx.Empty() {
			active := idx.Active()
			key := active[rnd.IntN(len(active))]
			from, _ := idx.front(key)
			to := rnd.IntN(size)

			moved := live[from]
			require.Equal(t, key, keyOf[moved], "seed %d: index points to a wrong entry", seed)

			live = slices.Delete(live, from, from+1)
			live = slices.Insert(live, to, moved)
			placed[moved] = true

			idx.pop(key)
			idx.applyMove(from, to)

			for _, group := range idx.Groups() {
				actual := []int{}
				for pos, entry := range live {
					if !placed[entry] && keyOf[entry] == group {
						actual = append(actual, pos)
					}
				}
				require.Equal(t, actual, append([]int{}, idx.positions[group]...), "seed %d, group %s", seed, group)
			}
		}
	}
}
