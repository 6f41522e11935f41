package queue_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsmile/albumchunks/src/queue"
	"github.com/ironsmile/albumchunks/src/queue/queuefakes"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0xc0ffee))
}

// TestReorderTwoAlbums reorders [A,A,A,B,B] in chunks of two. No matter the
// random order B's two entries end up next to each other and A is split in two
// and one.
func TestReorderTwoAlbums(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		q := newMemQueueFromString("AAABB")
		original := q.keys()
		idx := queue.NewIndex(original)

		res, err := queue.NewSequencer(q, seeded(seed), nil).Reorder(t.Context(), idx, 2)
		require.NoError(t, err)

		requireLayout(t, q, original, res)
		assert.Contains(t, []string{"BBAAA", "AABBA"}, q.layout(), "seed %d", seed)
		assert.Equal(t, 2, res.Passes)
		assert.True(t, idx.Empty())
	}
}

// TestReorderProperties runs the chunked reorder over many random queues and
// chunk sizes.
func TestReorderProperties(t *testing.T) {
	for seed := uint64(0); seed < 300; seed++ {
		rnd := seeded(seed)
		q := newMemQueue(randomKeys(rnd)...)
		original := q.keys()
		chunkSize := 1 + rnd.IntN(5)

		res, err := queue.NewSequencer(q, rnd, nil).Reorder(
			t.Context(),
			queue.NewIndex(original),
			chunkSize,
		)
		require.NoError(t, err, "seed %d", seed)
		requireLayout(t, q, original, res)

		largest := 0
		for _, size := range groupSizes(original) {
			largest = max(largest, size)
		}
		expectedPasses := (largest + chunkSize - 1) / chunkSize
		assert.Equal(t, expectedPasses, res.Passes, "seed %d", seed)
		assert.LessOrEqual(t, res.Moves, len(original))

		for i, chunk := range res.Chunks {
			require.LessOrEqual(t, chunk.Len, chunkSize, "seed %d", seed)
			if i == 0 || res.Chunks[i-1].Key != chunk.Key {
				continue
			}

			// Two chunks of the same group may only touch once it is the
			// last group with entries left.
			for _, rest := range res.Chunks[i:] {
				require.Equal(t, chunk.Key, rest.Key,
					"seed %d: group %s repeated while others remained", seed, chunk.Key)
			}
		}
	}
}

// TestReorderReshufflesEveryPass makes sure the order of groups is not fixed for
// the whole run.
func TestReorderReshufflesEveryPass(t *testing.T) {
	q := newMemQueueFromString("AAAABBBBCCCCDDDDEEEE")
	res, err := queue.NewSequencer(q, seeded(42), nil).Reorder(
		t.Context(),
		queue.NewIndex(q.keys()),
		1,
	)
	require.NoError(t, err)
	require.Equal(t, 4, res.Passes)

	passes := make([]string, res.Passes)
	for i, chunk := range res.Chunks {
		passes[i/5] += string(chunk.Key)
	}

	distinct := map[string]struct{}{}
	for _, pass := range passes {
		distinct[pass] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1, "all passes had the same order: %v", passes)
}

// TestReorderIsDeterministicForSeed checks that the same seed produces the same
// layout.
func TestReorderIsDeterministicForSeed(t *testing.T) {
	q1 := newMemQueueFromString("AABBBCCCCAD")
	q2 := newMemQueueFromString("AABBBCCCCAD")

	res1, err := queue.NewSequencer(q1, seeded(7), nil).Reorder(
		t.Context(), queue.NewIndex(q1.keys()), 2,
	)
	require.NoError(t, err)

	res2, err := queue.NewSequencer(q2, seeded(7), nil).Reorder(
		t.Context(), queue.NewIndex(q2.keys()), 2,
	)
	require.NoError(t, err)

	assert.Equal(t, res1, res2)
	assert.Equal(t, q1.layout(), q2.layout())
}

func TestReorderSingleGroupDoesNotMove(t *testing.T) {
	for _, chunkSize := range []int{1, 2, 5, 10} {
		fake := &queuefakes.FakeMutator{}
		idx := queue.NewIndex(queue.Snapshot{"A", "A", "A", "A", "A"})

		res, err := queue.NewSequencer(fake, seeded(1), nil).Reorder(t.Context(), idx, chunkSize)
		require.NoError(t, err)

		assert.Zero(t, fake.MoveCallCount(), "chunk size %d", chunkSize)
		assert.Zero(t, res.Moves)
		assert.Equal(t, 5, res.Placed)
	}
}

func TestReorderInvalidChunkSize(t *testing.T) {
	fake := &queuefakes.FakeMutator{}
	idx := queue.NewIndex(queue.Snapshot{"A", "B"})

	_, err := queue.NewSequencer(fake, nil, nil).Reorder(t.Context(), idx, 0)
	assert.ErrorIs(t, err, queue.ErrInvalidChunkSize)
	assert.Zero(t, fake.MoveCallCount())
	assert.Equal(t, 2, idx.Len())
}

// TestReorderStopsOnMoveError makes sure a failing move aborts the run without
// any further moves or retries.
func TestReorderStopsOnMoveError(t *testing.T) {
	errRemote := errors.New("remote went away")

	fake := &queuefakes.FakeMutator{}
	fake.MoveReturnsOnCall(1, errRemote)

	idx := queue.NewIndex(queue.Snapshot{"A", "B", "A", "B", "A", "B"})
	res, err := queue.NewSequencer(fake, seeded(3), nil).Reorder(t.Context(), idx, 3)

	require.ErrorIs(t, err, errRemote)
	assert.Equal(t, 2, fake.MoveCallCount())
	assert.Equal(t, 1, res.Moves)
	assert.False(t, idx.Empty())
}

func TestShuffleGroupsKeepsGroupsWhole(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		rnd := seeded(seed)
		q := newMemQueue(randomKeys(rnd)...)
		original := q.keys()
		sizes := groupSizes(original)

		res, err := queue.NewSequencer(q, rnd, nil).ShuffleGroups(
			t.Context(),
			queue.NewIndex(original),
		)
		require.NoError(t, err, "seed %d", seed)
		requireLayout(t, q, original, res)

		assert.Equal(t, 1, res.Passes)
		require.Len(t, res.Chunks, len(sizes), "seed %d", seed)
		for _, chunk := range res.Chunks {
			assert.Equal(t, sizes[chunk.Key], chunk.Len, "seed %d group %s", seed, chunk.Key)
		}
	}
}

func TestSequencerEmptyIndex(t *testing.T) {
	fake := &queuefakes.FakeMutator{}
	seqr := queue.NewSequencer(fake, seeded(1), nil)

	res, err := seqr.Reorder(context.Background(), queue.NewIndex(nil), 4)
	require.NoError(t, err)
	assert.Equal(t, queue.Result{}, res)

	res, err = seqr.ShuffleGroups(context.Background(), queue.NewIndex(nil))
	require.NoError(t, err)
	assert.Equal(t, queue.Result{}, res)

	assert.Zero(t, fake.MoveCallCount())
}

// TestReorderMovesAreInRange records every move made through a fake and checks
// it against the queue length, as a remote queue would.
func TestReorderMovesAreInRange(t *testing.T) {
	q := newMemQueueFromString("ABCABCABCAABBCC")
	fake := &queuefakes.FakeMutator{}
	fake.MoveCalls(q.Move)

	res, err := queue.NewSequencer(fake, seeded(11), nil).Reorder(
		t.Context(), queue.NewIndex(q.keys()), 2,
	)
	require.NoError(t, err)
	require.Equal(t, res.Moves, fake.MoveCallCount())

	for i := 0; i < fake.MoveCallCount(); i++ {
		_, from, to := fake.MoveArgsForCall(i)
		assert.GreaterOrEqual(t, from, to, "move %d goes forward", i)
		assert.Less(t, from, 15)
	}
}
