package playlists_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsmile/albumchunks/src/playlists"
	"github.com/ironsmile/albumchunks/src/queue"
)

func getSQLFiles() fs.FS {
	return os.DirFS("../../sqls")
}

func getStore(t *testing.T) *playlists.Store {
	t.Helper()

	store, err := playlists.Open(
		filepath.Join(t.TempDir(), "albumchunks.db"),
		getSQLFiles(),
		nil,
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func makeTracks(albums string) []queue.TrackMeta {
	var tracks []queue.TrackMeta
	for i, album := range albums {
		tracks = append(tracks, queue.TrackMeta{
			Artist: "Artist " + string(album),
			Album:  string(album),
			Title:  fmt.Sprintf("Track %d", i),
		})
	}
	return tracks
}

func titles(tracks []queue.TrackMeta) []string {
	var out []string
	for _, track := range tracks {
		out = append(out, track.Title)
	}
	return out
}

// TestStoreCreateFindDelete checks the basic operations on stored playlists.
func TestStoreCreateFindDelete(t *testing.T) {
	ctx := t.Context()
	store := getStore(t)

	_, err := store.Find(ctx, "queue")
	require.ErrorIs(t, err, playlists.ErrNotFound)

	id, err := store.Create(ctx, "queue", makeTracks("AAB"))
	require.NoError(t, err)

	found, err := store.Find(ctx, "queue")
	require.NoError(t, err)
	assert.Equal(t, id, found)

	tracks, err := store.Tracks(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Track 0", "Track 1", "Track 2"}, titles(tracks))
	for i, track := range tracks {
		assert.Equal(t, i, track.Index)
	}

	require.NoError(t, store.Delete(ctx, id))
	assert.ErrorIs(t, store.Delete(ctx, id), playlists.ErrNotFound)

	_, err = store.Tracks(ctx, id)
	assert.ErrorIs(t, err, playlists.ErrNotFound)

	_, err = store.Create(ctx, "", nil)
	assert.Error(t, err)
}

func TestStoreCreateReplaces(t *testing.T) {
	ctx := t.Context()
	store := getStore(t)

	first, err := store.Create(ctx, "queue", makeTracks("AAAA"))
	require.NoError(t, err)

	second, err := store.Create(ctx, "queue", makeTracks("BB"))
	require.NoError(t, err)

	_, err = store.Tracks(ctx, first)
	assert.ErrorIs(t, err, playlists.ErrNotFound)

	length, err := store.Sequence(second, queue.GroupByAlbum).Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, length)
}

func TestSequenceReads(t *testing.T) {
	ctx := t.Context()
	store := getStore(t)

	id, err := store.Create(ctx, "queue", makeTracks("ABA"))
	require.NoError(t, err)

	byAlbum := store.Sequence(id, queue.GroupByAlbum)
	key, err := byAlbum.GroupKeyAt(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, queue.GroupKey("B"), key)

	byArtist := store.Sequence(id, queue.GroupByArtist)
	key, err = byArtist.GroupKeyAt(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, queue.GroupKey("Artist A"), key)

	track, err := byAlbum.Describe(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, queue.TrackMeta{
		Index:  2,
		Artist: "Artist A",
		Album:  "A",
		Title:  "Track 2",
	}, track)

	_, err = byAlbum.GroupKeyAt(ctx, 3)
	assert.ErrorIs(t, err, playlists.ErrIndexOutOfRange)

	_, err = store.Sequence(id+100, queue.GroupByAlbum).Length(ctx)
	assert.ErrorIs(t, err, playlists.ErrNotFound)
}

// TestSequenceMove compares moves in the database with the same moves done on
// a slice.
func TestSequenceMove(t *testing.T) {
	ctx := t.Context()
	store := getStore(t)

	tracks := makeTracks("ABCDEFG")
	id, err := store.Create(ctx, "queue", tracks)
	require.NoError(t, err)
	seq := store.Sequence(id, queue.GroupByAlbum)

	expected := titles(tracks)
	moves := [][2]int{{3, 0}, {0, 6}, {2, 2}, {6, 1}, {4, 5}, {5, 4}}
	for _, move := range moves {
		from, to := move[0], move[1]
		require.NoError(t, seq.Move(ctx, from, to), "move %d->%d", from, to)

		title := expected[from]
		expected = slices.Delete(expected, from, from+1)
		expected = slices.Insert(expected, to, title)

		actual, err := store.Tracks(ctx, id)
		require.NoError(t, err)
		require.Equal(t, expected, titles(actual), "after move %d->%d", from, to)
	}

	err = seq.Move(ctx, 0, 7)
	assert.True(t, errors.Is(err, playlists.ErrIndexOutOfRange), "got %v", err)

	err = seq.Move(ctx, -1, 0)
	assert.ErrorIs(t, err, playlists.ErrIndexOutOfRange)
}

// TestSequenceReorder runs the chunked reorder on a stored playlist.
func TestSequenceReorder(t *testing.T) {
	ctx := t.Context()
	store := getStore(t)

	tracks := makeTracks("AAAAABBBCCCCCCDE")
	id, err := store.Create(ctx, "queue", tracks)
	require.NoError(t, err)

	res, err := queue.NewDriver(store.Sequence(id, queue.GroupByAlbum), nil, nil).Reorder(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Passes)

	reordered, err := store.Tracks(ctx, id)
	require.NoError(t, err)
	require.Len(t, reordered, len(tracks))
	assert.ElementsMatch(t, titles(tracks), titles(reordered))

	for _, chunk := range res.Chunks {
		assert.LessOrEqual(t, chunk.Len, 3)
		for pos := chunk.Start; pos < chunk.Start+chunk.Len; pos++ {
			assert.Equal(t, string(chunk.Key), reordered[pos].Album)
		}
	}
}

func TestSequenceTracksRange(t *testing.T) {
	ctx := t.Context()
	store := getStore(t)

	id, err := store.Create(ctx, "queue", makeTracks("ABCD"))
	require.NoError(t, err)
	seq := store.Sequence(id, queue.GroupByAlbum)

	tracks, err := seq.Tracks(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Track 1", "Track 2"}, titles(tracks))
	assert.Equal(t, 1, tracks[0].Index)

	_, err = seq.Tracks(ctx, 2, 5)
	assert.ErrorIs(t, err, playlists.ErrIndexOutOfRange)

	_, err = seq.Tracks(ctx, 3, 2)
	assert.Error(t, err)
}
