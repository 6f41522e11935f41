package playlists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ironsmile/albumchunks/src/queue"
)

// Sequence is a stored playlist seen as a queue. It implements queue.Sequence
// and queue.Describer.
type Sequence struct {
	store   *Store
	id      int64
	groupBy queue.GroupBy
}

// Length implements queue.Reader.
func (q *Sequence) Length(ctx context.Context) (int, error) {
	const countQuery = `
		SELECT COUNT(*) FROM playlists_tracks WHERE playlist_id = @playlist_id
	`

	if err := q.store.exists(ctx, q.id); err != nil {
		return 0, err
	}

	var count int
	row := q.store.db.QueryRowContext(ctx, countQuery, sql.Named("playlist_id", q.id))
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting playlist tracks: %w", err)
	}

	return count, nil
}

// GroupKeyAt implements queue.Reader.
func (q *Sequence) GroupKeyAt(ctx context.Context, pos int) (queue.GroupKey, error) {
	track, err := q.Describe(ctx, pos)
	if err != nil {
		return "", err
	}

	return track.Key(q.groupBy), nil
}

// Describe implements queue.Describer.
func (q *Sequence) Describe(ctx context.Context, pos int) (queue.TrackMeta, error) {
	const trackQuery = `
		SELECT artist, album, title
		FROM playlists_tracks
		WHERE playlist_id = @playlist_id AND "index" = @track_index
	`

	track := queue.TrackMeta{Index: pos}
	row := q.store.db.QueryRowContext(ctx, trackQuery,
		sql.Named("playlist_id", q.id),
		sql.Named("track_index", pos),
	)
	err := row.Scan(&track.Artist, &track.Album, &track.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return queue.TrackMeta{}, fmt.Errorf("entry %d: %w", pos, ErrIndexOutOfRange)
	} else if err != nil {
		return queue.TrackMeta{}, fmt.Errorf("reading entry %d: %w", pos, err)
	}

	return track, nil
}

// Tracks returns the description of every entry in [from, to).
func (q *Sequence) Tracks(ctx context.Context, from, to int) ([]queue.TrackMeta, error) {
	if from < 0 || to < from {
		return nil, fmt.Errorf("invalid range [%d, %d)", from, to)
	}

	all, err := q.store.Tracks(ctx, q.id)
	if err != nil {
		return nil, err
	}
	if to > len(all) {
		return nil, fmt.Errorf("range [%d, %d) in playlist of %d: %w",
			from, to, len(all), ErrIndexOutOfRange)
	}

	return all[from:to], nil
}

// Move implements queue.Mutator. The entry is taken out at `from`, the entries
// after it close the gap and then a new gap is made at `to` for it.
func (q *Sequence) Move(ctx context.Context, from, to int) error {
	const countQuery = `
		SELECT COUNT(*) FROM playlists_tracks WHERE playlist_id = @playlist_id
	`

	const getTrackByIndexQuery = `
		SELECT id FROM playlists_tracks
		WHERE playlist_id = @playlist_id AND "index" = @track_index
	`

	const updateTrackIndexesQuery = `
		UPDATE playlists_tracks
		SET
			"index" = "index" - 1
		WHERE
			playlist_id = @playlist_id AND
			"index" > @track_index
	`

	const createIndexGapQuery = `
		UPDATE playlists_tracks
		SET
			"index" = "index" + 1
		WHERE
			playlist_id = @playlist_id AND
			"index" >= @track_index AND
			id != @moved_id
	`

	const placeMovedQuery = `
		UPDATE playlists_tracks
		SET
			"index" = @track_index
		WHERE
			id = @moved_id
	`

	const touchPlaylistQuery = `
		UPDATE playlists SET updated_at = @updated_time WHERE id = @playlist_id
	`

	return q.store.withTx(ctx, func(tx *sql.Tx) error {
		idArg := sql.Named("playlist_id", q.id)

		var count int
		if err := tx.QueryRowContext(ctx, countQuery, idArg).Scan(&count); err != nil {
			return fmt.Errorf("counting playlist tracks: %w", err)
		}
		if from < 0 || from >= count || to < 0 || to >= count {
			return fmt.Errorf("move %d->%d in playlist of %d: %w",
				from, to, count, ErrIndexOutOfRange)
		}
		if from == to {
			return nil
		}

		var movedID int64
		row := tx.QueryRowContext(ctx, getTrackByIndexQuery,
			idArg,
			sql.Named("track_index", from),
		)
		if err := row.Scan(&movedID); err != nil {
			return fmt.Errorf("failed to scan for track for move (%d->%d): %w",
				from, to, err)
		}

		_, err := tx.ExecContext(ctx, updateTrackIndexesQuery,
			idArg,
			sql.Named("track_index", from),
		)
		if err != nil {
			return fmt.Errorf("failed to update track index (moving) %d: %w", from, err)
		}

		movedArg := sql.Named("moved_id", movedID)
		toArg := sql.Named("track_index", to)

		if _, err := tx.ExecContext(ctx, createIndexGapQuery, idArg, toArg, movedArg); err != nil {
			return fmt.Errorf("failed to create gap during move (%d->%d): %w", from, to, err)
		}

		if _, err := tx.ExecContext(ctx, placeMovedQuery, toArg, movedArg); err != nil {
			return fmt.Errorf("failed to place track during move (%d->%d): %w", from, to, err)
		}

		_, err = tx.ExecContext(ctx, touchPlaylistQuery,
			idArg,
			sql.Named("updated_time", time.Now().Unix()),
		)
		return err
	})
}

var (
	_ queue.Sequence  = (*Sequence)(nil)
	_ queue.Describer = (*Sequence)(nil)
)
