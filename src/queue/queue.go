// Package queue reorders a remote play queue whose only mutation is moving a
// single entry from one position to another.
//
// The queue is read once at the start of a run. From then on the package keeps
// a local model of where every not yet placed entry currently sits and corrects
// it after each move, so the remote side is never queried mid-run.
package queue

import (
	"context"
	"errors"
	"fmt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// GroupKey identifies the group (album, artist) an entry belongs to.
type GroupKey string

// GroupBy is the track attribute used for deriving a GroupKey.
type GroupBy string

const (
	// GroupByAlbum groups queue entries by their album name.
	GroupByAlbum GroupBy = "album"

	// GroupByArtist groups queue entries by their artist name.
	GroupByArtist GroupBy = "artist"
)

// ParseGroupBy returns the GroupBy for `val`. The empty string means albums.
func ParseGroupBy(val string) (GroupBy, error) {
	switch GroupBy(val) {
	case "", GroupByAlbum:
		return GroupByAlbum, nil
	case GroupByArtist:
		return GroupByArtist, nil
	}

	return "", fmt.Errorf("unknown group by value %q", val)
}

//counterfeiter:generate . Reader

// Reader reports the current state of a queue.
type Reader interface {
	// Length returns the current number of entries.
	Length(ctx context.Context) (int, error)

	// GroupKeyAt returns the group of the entry which is currently at `pos`.
	GroupKeyAt(ctx context.Context, pos int) (GroupKey, error)
}

//counterfeiter:generate . Mutator

// Mutator changes a queue.
type Mutator interface {
	// Move relocates the entry at `from` to `to` in one step. Both indexes
	// refer to the queue as it is just before the move.
	Move(ctx context.Context, from, to int) error
}

//counterfeiter:generate . Sequence

// Sequence is a queue which could be both read and changed.
type Sequence interface {
	Reader
	Mutator
}

// Describer returns display information for a queue entry.
type Describer interface {
	Describe(ctx context.Context, pos int) (TrackMeta, error)
}

// TrackMeta is the display information for a single queue entry.
type TrackMeta struct {
	Index  int
	Artist string
	Title  string
	Album  string
}

// Key returns the group key of the track for the grouping `by`.
func (t TrackMeta) Key(by GroupBy) GroupKey {
	if by == GroupByArtist {
		return GroupKey(t.Artist)
	}
	return GroupKey(t.Album)
}

// ErrInvalidChunkSize is returned when reordering is requested with a chunk size
// smaller than one.
var ErrInvalidChunkSize = errors.New("chunk size must be at least one")

// ErrInvalidLength is returned when a queue reports a negative length.
var ErrInvalidLength = errors.New("invalid queue length")

// Snapshot maps every position of a queue to the group of its entry at the
// moment of capturing. It becomes stale with the first move.
type Snapshot []GroupKey

// TakeSnapshot reads the group of every entry in `r`. Reads are sequential.
func TakeSnapshot(ctx context.Context, r Reader) (Snapshot, error) {
	length, err := r.Length(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting queue length: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	snap := make(Snapshot, 0, length)
	for pos := 0; pos < length; pos++ {
		key, err := r.GroupKeyAt(ctx, pos)
		if err != nil {
			return nil, fmt.Errorf("getting group of entry %d: %w", pos, err)
		}
		snap = append(snap, key)
	}

	return snap, nil
}
