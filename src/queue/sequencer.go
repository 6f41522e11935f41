package queue

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
)

// Chunk is a run of consecutive destination positions which were filled with
// entries of the same group during a single placement.
type Chunk struct {
	Key   GroupKey
	Start int
	Len   int
}

// Result describes what a run of the Sequencer did.
type Result struct {
	// Passes is the number of times the groups were shuffled and visited.
	Passes int

	// Moves is the number of move operations sent to the Mutator. Entries
	// which were already at their destination are not moved.
	Moves int

	// Placed is the number of entries which reached their final position.
	Placed int

	// Chunks is the resulting layout of the queue, in destination order.
	Chunks []Chunk
}

// Sequencer computes and applies the moves which bring a queue into grouped
// and shuffled order. Moves are sent one at a time and each is acknowledged
// before the next one is computed.
type Sequencer struct {
	mutator Mutator
	rnd     *rand.Rand
	logger  *zap.Logger
}

// NewSequencer returns a Sequencer which applies its moves on `m`. When `rnd`
// is nil a randomly seeded source is used. A nil `logger` disables logging.
func NewSequencer(m Mutator, rnd *rand.Rand, logger *zap.Logger) *Sequencer {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Sequencer{
		mutator: m,
		rnd:     rnd,
		logger:  logger,
	}
}

// run is the state of one reordering. It owns the index for its duration.
type run struct {
	idx    *Index
	cursor int
	result Result
}

// lastKey returns the group of the most recently placed chunk.
func (r *run) lastKey() (GroupKey, bool) {
	if len(r.result.Chunks) == 0 {
		return "", false
	}
	return r.result.Chunks[len(r.result.Chunks)-1].Key, true
}

// Reorder places the entries of `idx` in chunks of at most `chunkSize` entries
// per group. Every pass visits the groups which still have entries in a fresh
// random order and takes the earliest remaining entries of each. Passes repeat
// until the index is empty.
//
// On error the run stops right away. Moves which were already made stay.
func (s *Sequencer) Reorder(
	ctx context.Context,
	idx *Index,
	chunkSize int,
) (Result, error) {
	if chunkSize < 1 {
		return Result{}, ErrInvalidChunkSize
	}

	r := &run{idx: idx}
	for !idx.Empty() {
		order := s.passOrder(r)
		r.result.Passes++

		s.logger.Debug("starting pass",
			zap.Int("pass", r.result.Passes),
			zap.Int("groups", len(order)),
			zap.Int("remaining", idx.Len()),
		)

		for _, key := range order {
			if err := s.place(ctx, r, key, chunkSize); err != nil {
				return r.result, err
			}
		}
	}

	return r.result, nil
}

// ShuffleGroups moves every group as a whole into a random group order. Entries
// within a group keep their relative order.
func (s *Sequencer) ShuffleGroups(ctx context.Context, idx *Index) (Result, error) {
	r := &run{idx: idx}
	if idx.Empty() {
		return r.result, nil
	}

	order := s.passOrder(r)
	r.result.Passes = 1

	for _, key := range order {
		if err := s.place(ctx, r, key, len(idx.positions[key])); err != nil {
			return r.result, err
		}
	}

	return r.result, nil
}

// passOrder shuffles the active groups uniformly and then, when the pass would
// start with the group which ended the previous one, swaps that group with a
// random other one, if there is one. After the swap the order is no longer
// exactly uniform.
func (s *Sequencer) passOrder(r *run) []GroupKey {
	order := r.idx.Active()
	s.rnd.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	last, ok := r.lastKey()
	if ok && len(order) > 1 && order[0] == last {
		other := 1 + s.rnd.IntN(len(order)-1)
		order[0], order[other] = order[other], order[0]
	}

	return order
}

// place moves up to `limit` of the earliest remaining entries of `key` to the
// cursor, one at a time. The index is corrected after every single move so the
// next entry's position is read in the current numbering.
func (s *Sequencer) place(ctx context.Context, r *run, key GroupKey, limit int) error {
	var (
		start = r.cursor
		err   error
	)

	for n := 0; n < limit; n++ {
		from, ok := r.idx.front(key)
		if !ok {
			break
		}
		to := r.cursor

		if from != to {
			if err = s.mutator.Move(ctx, from, to); err != nil {
				err = fmt.Errorf("moving entry %d to %d: %w", from, to, err)
				break
			}
			r.result.Moves++

			s.logger.Debug("moved entry",
				zap.String("group", string(key)),
				zap.Int("from", from),
				zap.Int("to", to),
			)
		}

		r.idx.pop(key)
		r.idx.applyMove(from, to)
		r.cursor++
		r.result.Placed++
	}

	if r.cursor > start {
		r.result.Chunks = append(r.result.Chunks, Chunk{
			Key:   key,
			Start: start,
			Len:   r.cursor - start,
		})
	}

	return err
}
