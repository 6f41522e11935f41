package queue

import (
	"context"
	"math/rand/v2"

	"github.com/sanity-io/litter"
	"go.uber.org/zap"
)

// Driver reads a queue once, builds its index and reorders it.
type Driver struct {
	seq       Sequence
	sequencer *Sequencer
	logger    *zap.Logger
}

// NewDriver returns a Driver for `seq`. See NewSequencer for the meaning of
// `rnd` and `logger`.
func NewDriver(seq Sequence, rnd *rand.Rand, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Driver{
		seq:       seq,
		sequencer: NewSequencer(seq, rnd, logger),
		logger:    logger,
	}
}

// Reorder places the queue entries in chunks of at most `chunkSize` entries of
// the same group. An empty queue is not an error and nothing is moved.
func (d *Driver) Reorder(ctx context.Context, chunkSize int) (Result, error) {
	if chunkSize < 1 {
		return Result{}, ErrInvalidChunkSize
	}

	idx, err := d.index(ctx)
	if err != nil {
		return Result{}, err
	}

	return d.sequencer.Reorder(ctx, idx, chunkSize)
}

// Shuffle reorders whole groups against each other.
func (d *Driver) Shuffle(ctx context.Context) (Result, error) {
	idx, err := d.index(ctx)
	if err != nil {
		return Result{}, err
	}

	return d.sequencer.ShuffleGroups(ctx, idx)
}

func (d *Driver) index(ctx context.Context) (*Index, error) {
	snap, err := TakeSnapshot(ctx, d.seq)
	if err != nil {
		return nil, err
	}

	idx := NewIndex(snap)
	d.logger.Debug("built group index",
		zap.Int("entries", len(snap)),
		zap.Int("groups", len(idx.order)),
	)

	if ce := d.logger.Check(zap.DebugLevel, "group index contents"); ce != nil {
		ce.Write(zap.String("positions", litter.Sdump(idx.positions)))
	}

	return idx, nil
}
