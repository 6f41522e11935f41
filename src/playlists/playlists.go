// Package playlists keeps local copies of play queues in a SQLite database.
//
// A stored playlist behaves like the remote queue it was copied from: it is a
// queue.Sequence whose only mutation is moving a single entry. This makes it
// possible to try out a reordering without touching the player.
package playlists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	migrate "github.com/ironsmile/sql-migrate"
	_ "github.com/mattn/go-sqlite3" // sqlite3 database/sql driver
	"go.uber.org/zap"

	"github.com/ironsmile/albumchunks/src/queue"
)

// sqlMigrateDirectory is the directory within the SQL files fs.FS which
// contains the .sql files for sql-migrate.
const sqlMigrateDirectory = "migrations"

// ErrNotFound is returned when a playlist was not found for a given operation.
var ErrNotFound = errors.New("playlist not found")

// ErrIndexOutOfRange is returned when a position is not within the playlist.
var ErrIndexOutOfRange = errors.New("index out of range")

// Store is a SQLite database with playlists.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if necessary) the SQLite database at `path` and applies
// the migrations found in `sqlFiles`.
func Open(path string, sqlFiles fs.FS, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection so that every statement sees the same database state.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: logger}
	if err := s.applyMigrations(sqlFiles); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyMigrations applies the database migrations if it is necessary.
func (s *Store) applyMigrations(sqlFiles fs.FS) error {
	migrationFiles, err := fs.Sub(sqlFiles, sqlMigrateDirectory)
	if err != nil {
		return fmt.Errorf("locating migrate dir within sqlFiles fs.FS failed: %w", err)
	}

	migrations := &migrate.HttpFileSystemMigrationSource{
		FileSystem: http.FS(migrationFiles),
	}

	applied, err := migrate.ExecMax(s.db, "sqlite3", migrations, migrate.Up, 0)
	if err != nil {
		return fmt.Errorf("executing db migration failed: %w", err)
	}

	if applied > 0 {
		s.logger.Debug("applied database migrations", zap.Int("count", applied))
	}
	return nil
}

// Create stores `tracks` as a playlist named `name`, in this order. A playlist
// with the same name is replaced.
//
// Returns the unique ID of the newly created playlist.
func (s *Store) Create(
	ctx context.Context,
	name string,
	tracks []queue.TrackMeta,
) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("name cannot be empty")
	}

	const deleteTracksByNameQuery = `
		DELETE FROM playlists_tracks
		WHERE playlist_id IN (SELECT id FROM playlists WHERE name = @name)
	`

	const deleteByNameQuery = `
		DELETE FROM playlists WHERE name = @name
	`

	const insertPlaylistQuery = `
		INSERT INTO
			playlists (name, created_at, updated_at)
		VALUES
			(@name, @current_time, @current_time)
	`

	const insertTrackQuery = `
		INSERT INTO
			playlists_tracks (playlist_id, "index", artist, album, title)
		VALUES
			(@playlist_id, @track_index, @artist, @album, @title)
	`

	var lastInsertID int64

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		nameArg := sql.Named("name", name)
		if _, err := tx.ExecContext(ctx, deleteTracksByNameQuery, nameArg); err != nil {
			return fmt.Errorf("failed to remove old playlist tracks: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteByNameQuery, nameArg); err != nil {
			return fmt.Errorf("failed to remove old playlist: %w", err)
		}

		res, err := tx.ExecContext(ctx, insertPlaylistQuery,
			nameArg,
			sql.Named("current_time", time.Now().Unix()),
		)
		if err != nil {
			return fmt.Errorf("failed to insert playlist: %w", err)
		}

		lastInsertID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("cannot get last insert ID for playlist: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, insertTrackQuery)
		if err != nil {
			return fmt.Errorf("preparing track insert: %w", err)
		}
		defer stmt.Close()

		for index, track := range tracks {
			_, err := stmt.ExecContext(ctx,
				sql.Named("playlist_id", lastInsertID),
				sql.Named("track_index", index),
				sql.Named("artist", track.Artist),
				sql.Named("album", track.Album),
				sql.Named("title", track.Title),
			)
			if err != nil {
				return fmt.Errorf("failed to insert track %d: %w", index, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return lastInsertID, nil
}

// Find returns the ID of the playlist named `name`.
func (s *Store) Find(ctx context.Context, name string) (int64, error) {
	const findQuery = `
		SELECT id FROM playlists WHERE name = @name
	`

	var id int64
	row := s.db.QueryRowContext(ctx, findQuery, sql.Named("name", name))
	if err := row.Scan(&id); errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	} else if err != nil {
		return 0, fmt.Errorf("finding playlist %q: %w", name, err)
	}

	return id, nil
}

// Delete removes a playlist by its `id`.
func (s *Store) Delete(ctx context.Context, id int64) error {
	const deleteTracksQuery = `
		DELETE FROM playlists_tracks WHERE playlist_id = @playlist_id
	`

	const deletePlaylistQuery = `
		DELETE FROM playlists WHERE id = @playlist_id
	`

	return s.withTx(ctx, func(tx *sql.Tx) error {
		idArg := sql.Named("playlist_id", id)
		if _, err := tx.ExecContext(ctx, deleteTracksQuery, idArg); err != nil {
			return fmt.Errorf("sql query error: %w", err)
		}

		res, err := tx.ExecContext(ctx, deletePlaylistQuery, idArg)
		if err != nil {
			return fmt.Errorf("sql query error: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("cannot get number of affected rows: %w", err)
		}

		if affected < 1 {
			return ErrNotFound
		}

		return nil
	})
}

// Tracks returns the tracks of playlist `id` in their current order.
func (s *Store) Tracks(ctx context.Context, id int64) ([]queue.TrackMeta, error) {
	const tracksQuery = `
		SELECT "index", artist, album, title
		FROM playlists_tracks
		WHERE playlist_id = @playlist_id
		ORDER BY "index"
	`

	if err := s.exists(ctx, id); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, tracksQuery, sql.Named("playlist_id", id))
	if err != nil {
		return nil, fmt.Errorf("could not query the database: %w", err)
	}
	defer rows.Close()

	var tracks []queue.TrackMeta
	for rows.Next() {
		var track queue.TrackMeta
		if err := rows.Scan(&track.Index, &track.Artist, &track.Album, &track.Title); err != nil {
			return nil, fmt.Errorf("error scanning track: %w", err)
		}
		tracks = append(tracks, track)
	}

	return tracks, rows.Err()
}

// Sequence returns the playlist `id` as a queue grouped by `groupBy`.
func (s *Store) Sequence(id int64, groupBy queue.GroupBy) *Sequence {
	return &Sequence{
		store:   s,
		id:      id,
		groupBy: groupBy,
	}
}

func (s *Store) exists(ctx context.Context, id int64) error {
	const existsQuery = `
		SELECT COUNT(*) FROM playlists WHERE id = @playlist_id
	`

	var count int64
	row := s.db.QueryRowContext(ctx, existsQuery, sql.Named("playlist_id", id))
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("checking for playlist %d: %w", id, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// withTx runs `work` in a transaction which is committed when `work` returns
// no error and rolled back otherwise.
func (s *Store) withTx(ctx context.Context, work func(tx *sql.Tx) error) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cannot begin DB transaction: %w", err)
	}
	defer func() {
		if retErr == nil {
			if commitErr := tx.Commit(); commitErr != nil {
				retErr = commitErr
			}
		} else {
			_ = tx.Rollback()
		}
	}()

	return work(tx)
}
