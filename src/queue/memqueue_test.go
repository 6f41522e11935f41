package queue_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"

	"github.com/ironsmile/albumchunks/src/queue"
)

// memEntry is an entry in memQueue. The id is its position before any move.
type memEntry struct {
	id  int
	key queue.GroupKey
}

// memQueue is a queue.Sequence which really applies every move. It validates
// indexes against its current length the same way a remote queue would.
type memQueue struct {
	entries []memEntry
	moves   int
}

func newMemQueue(keys ...queue.GroupKey) *memQueue {
	q := &memQueue{}
	for id, key := range keys {
		q.entries = append(q.entries, memEntry{id: id, key: key})
	}
	return q
}

// newMemQueueFromString makes a queue with one entry per letter in `layout`.
func newMemQueueFromString(layout string) *memQueue {
	var keys []queue.GroupKey
	for _, r := range layout {
		keys = append(keys, queue.GroupKey(string(r)))
	}
	return newMemQueue(keys...)
}

func (q *memQueue) Length(_ context.Context) (int, error) {
	return len(q.entries), nil
}

func (q *memQueue) GroupKeyAt(_ context.Context, pos int) (queue.GroupKey, error) {
	if pos < 0 || pos >= len(q.entries) {
		return "", fmt.Errorf("position %d out of range", pos)
	}
	return q.entries[pos].key, nil
}

func (q *memQueue) Move(_ context.Context, from, to int) error {
	if from < 0 || from >= len(q.entries) || to < 0 || to >= len(q.entries) {
		return fmt.Errorf("move %d->%d out of range for length %d", from, to, len(q.entries))
	}

	entry := q.entries[from]
	q.entries = slices.Delete(q.entries, from, from+1)
	q.entries = slices.Insert(q.entries, to, entry)
	q.moves++
	return nil
}

func (q *memQueue) keys() []queue.GroupKey {
	keys := make([]queue.GroupKey, 0, len(q.entries))
	for _, entry := range q.entries {
		keys = append(keys, entry.key)
	}
	return keys
}

func (q *memQueue) layout() string {
	var sb strings.Builder
	for _, key := range q.keys() {
		sb.WriteString(string(key))
	}
	return sb.String()
}

// randomKeys returns a random queue of up to 40 entries in up to 6 groups.
func randomKeys(rnd *rand.Rand) []queue.GroupKey {
	var (
		size   = 1 + rnd.IntN(40)
		groups = 1 + rnd.IntN(6)
		keys   = make([]queue.GroupKey, size)
	)
	for i := range keys {
		keys[i] = queue.GroupKey(fmt.Sprintf("album-%d", rnd.IntN(groups)))
	}
	return keys
}

// requireLayout checks that the queue holds every original entry exactly once
// and that the reported chunks describe it: contiguous, of a single group each,
// with entries kept in their original order.
func requireLayout(
	t *testing.T,
	q *memQueue,
	original []queue.GroupKey,
	res queue.Result,
) {
	t.Helper()

	require.Len(t, q.entries, len(original))
	seen := mapset.NewThreadUnsafeSet[int]()
	for _, entry := range q.entries {
		require.True(t, seen.Add(entry.id), "entry %d is in the queue twice", entry.id)
		require.Equal(t, original[entry.id], entry.key, "entry %d changed group", entry.id)
	}
	require.Equal(t, len(original), seen.Cardinality())
	require.Equal(t, len(original), res.Placed)

	next := 0
	for _, chunk := range res.Chunks {
		require.Equal(t, next, chunk.Start, "chunks are not contiguous")
		require.Positive(t, chunk.Len)

		for pos := chunk.Start; pos < chunk.Start+chunk.Len; pos++ {
			require.Equal(t, chunk.Key, q.entries[pos].key, "position %d", pos)
			if pos > chunk.Start {
				require.Less(t, q.entries[pos-1].id, q.entries[pos].id,
					"original order not kept within chunk at %d", pos)
			}
		}
		next += chunk.Len
	}
	require.Equal(t, len(original), next, "chunks do not cover the queue")
}

// groupSizes counts the entries of every group.
func groupSizes(keys []queue.GroupKey) map[queue.GroupKey]int {
	sizes := make(map[queue.GroupKey]int)
	for _, key := range keys {
		sizes[key]++
	}
	return sizes
}
