package lyrion

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/ironsmile/albumchunks/src/queue"
)

const (
	// UnknownAlbum is the group key used for tracks without an album.
	UnknownAlbum = "Unknown Album"

	unknownValue = "unknown"

	// tracksReadLimit is the maximum number of entries Tracks reads at once.
	tracksReadLimit = 8
)

// Length implements queue.Reader.
func (c *Client) Length(ctx context.Context) (int, error) {
	const op = "playlist tracks"

	result, err := c.query(ctx, op, "playlist", "tracks", "?")
	if err != nil {
		return 0, err
	}

	length, err := intField(op, result, "_tracks")
	if err != nil {
		return 0, err
	}
	if length < 0 {
		return 0, &ProtocolError{
			Op:    op,
			Field: "_tracks",
			Err:   fmt.Errorf("negative length %d", length),
		}
	}

	return length, nil
}

// GroupKeyAt implements queue.Reader. The key is the album or the artist of
// the entry at `pos` depending on the client's grouping.
func (c *Client) GroupKeyAt(ctx context.Context, pos int) (queue.GroupKey, error) {
	if c.groupBy == queue.GroupByArtist {
		artist, err := c.field(ctx, "artist", pos, unknownValue)
		return queue.GroupKey(artist), err
	}

	album, err := c.field(ctx, "album", pos, UnknownAlbum)
	return queue.GroupKey(album), err
}

// Move implements queue.Mutator.
func (c *Client) Move(ctx context.Context, from, to int) error {
	_, err := c.request(ctx, "playlist move",
		"playlist", "move", strconv.Itoa(from), strconv.Itoa(to),
	)
	return err
}

// Describe implements queue.Describer. The album, artist and title are
// requested concurrently.
func (c *Client) Describe(ctx context.Context, pos int) (queue.TrackMeta, error) {
	track := queue.TrackMeta{Index: pos}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		track.Album, err = c.field(ctx, "album", pos, UnknownAlbum)
		return err
	})
	g.Go(func() (err error) {
		track.Artist, err = c.field(ctx, "artist", pos, unknownValue)
		return err
	})
	g.Go(func() (err error) {
		track.Title, err = c.field(ctx, "title", pos, unknownValue)
		return err
	})

	if err := g.Wait(); err != nil {
		return queue.TrackMeta{}, err
	}

	return track, nil
}

// Tracks returns the description of every entry in [from, to). Up to
// tracksReadLimit entries are read at the same time.
func (c *Client) Tracks(ctx context.Context, from, to int) ([]queue.TrackMeta, error) {
	if from < 0 || to < from {
		return nil, fmt.Errorf("invalid range [%d, %d)", from, to)
	}

	tracks := make([]queue.TrackMeta, to-from)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(tracksReadLimit)
	for pos := from; pos < to; pos++ {
		g.Go(func() error {
			track, err := c.Describe(ctx, pos)
			if err != nil {
				return fmt.Errorf("describing entry %d: %w", pos, err)
			}
			tracks[pos-from] = track
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tracks, nil
}

// field queries a single string attribute of the entry at `pos`.
func (c *Client) field(
	ctx context.Context,
	name string,
	pos int,
	fallback string,
) (string, error) {
	op := "playlist " + name

	result, err := c.query(ctx, op, "playlist", name, strconv.Itoa(pos), "?")
	if err != nil {
		return "", err
	}

	return stringField(op, result, "_"+name, fallback)
}

var (
	_ queue.Sequence  = (*Client)(nil)
	_ queue.Describer = (*Client)(nil)
)
