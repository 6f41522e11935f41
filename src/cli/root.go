// Package cli is the command line interface of albumchunks.
package cli

import (
	"context"
	"fmt"
	"io/fs"
	"math/rand/v2"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsmile/albumchunks/src/config"
	"github.com/ironsmile/albumchunks/src/helpers"
	"github.com/ironsmile/albumchunks/src/lyrion"
	"github.com/ironsmile/albumchunks/src/playlists"
	"github.com/ironsmile/albumchunks/src/queue"
)

// Deps are the outside resources the commands work with.
type Deps struct {
	// Fs is where the configuration is read from.
	Fs afero.Fs

	// SQLFiles contains the migrations for the local playlists database.
	SQLFiles fs.FS

	// UserPath overrides the directory with the configuration and the local
	// database. helpers.ProjectUserPath is used when empty.
	UserPath string

	// Logger is used instead of building one from the flags when set.
	Logger *zap.Logger
}

type flags struct {
	configPath string
	server     string
	player     string
	groupBy    string
	local      string
	verbose    bool
	seed       uint64
}

// app holds the state shared by all commands during one execution.
type app struct {
	deps     Deps
	flags    flags
	cfg      config.Config
	userPath string
	logger   *zap.Logger
}

// backend is a queue which could be reordered and listed.
type backend interface {
	queue.Sequence
	queue.Describer
	Tracks(ctx context.Context, from, to int) ([]queue.TrackMeta, error)
}

// NewRootCommand returns the albumchunks command with all of its subcommands.
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}

	a := &app{deps: deps}

	root := &cobra.Command{
		Use:   "albumchunks",
		Short: "Reorder a Lyrion queue into random chunks of albums",
		Long: `albumchunks reorders the play queue of a Lyrion player so that it plays
a few tracks of an album before moving to another random album, until no
tracks are left. It can also shuffle whole albums against each other.

Run without arguments for an interactive prompt.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runInteractive,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "configuration file (default [user_path]/config.json)")
	pf.StringVar(&a.flags.server, "server", "", "Lyrion server URL, e.g. http://192.168.1.2:9000")
	pf.StringVar(&a.flags.player, "player", "", "ID of the player whose queue is used")
	pf.StringVar(&a.flags.groupBy, "group-by", "", "group entries by \"album\" or \"artist\"")
	pf.StringVar(&a.flags.local, "local", "", "work on the named local copy instead of the player")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.Uint64Var(&a.flags.seed, "seed", 0, "seed for the random album order, zero means random")

	root.AddCommand(
		a.reorderCommand(),
		a.shuffleCommand(),
		a.lsCommand(),
		a.importCommand(),
		a.deleteCommand(),
		versionCommand(),
	)

	return root
}

// setup builds the logger and loads the configuration, overriding it with the
// command line flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.setupLogger(); err != nil {
		return err
	}

	if cmd.Name() == "version" {
		return nil
	}

	userPath := a.deps.UserPath
	if userPath == "" {
		var err error
		userPath, err = helpers.ProjectUserPath(a.deps.Fs)
		if err != nil {
			return fmt.Errorf("finding user path: %w", err)
		}
	}
	a.userPath = userPath

	if a.flags.configPath != "" {
		if err := a.cfg.ParseFile(a.deps.Fs, a.flags.configPath); err != nil {
			return err
		}
	} else if err := a.cfg.FindAndParse(a.deps.Fs, userPath); err != nil {
		return err
	}

	if a.flags.server != "" {
		a.cfg.ServerURL = a.flags.server
	}
	if a.flags.player != "" {
		a.cfg.PlayerID = a.flags.player
	}
	if a.flags.groupBy != "" {
		a.cfg.GroupBy = a.flags.groupBy
	}

	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.logger.Debug("configuration loaded",
		zap.String("user_path", userPath),
		zap.String("server_url", a.cfg.ServerURL),
		zap.String("player_id", a.cfg.PlayerID),
		zap.Int("chunk_size", a.cfg.ChunkSize),
		zap.String("group_by", a.cfg.GroupBy),
	)

	return nil
}

func (a *app) setupLogger() error {
	if a.deps.Logger != nil {
		a.logger = a.deps.Logger
		return nil
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Encoding = "console"
	logCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if a.flags.verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := logCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) groupBy() queue.GroupBy {
	groupBy, _ := queue.ParseGroupBy(a.cfg.GroupBy)
	return groupBy
}

// random returns the source for shuffling. Nil lets the queue package pick a
// random seed.
func (a *app) random() *rand.Rand {
	if a.flags.seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(a.flags.seed, a.flags.seed))
}

func (a *app) lyrionClient() (*lyrion.Client, error) {
	return lyrion.NewClient(lyrion.Options{
		ServerURL: a.cfg.ServerURL,
		PlayerID:  a.cfg.PlayerID,
		GroupBy:   a.groupBy(),
		Timeout:   a.cfg.RequestTimeout(),
		Username:  a.cfg.Username,
		Password:  a.cfg.Password,
		Logger:    a.logger.Named("lyrion"),
	})
}

func (a *app) openStore() (*playlists.Store, error) {
	if a.deps.SQLFiles == nil {
		return nil, fmt.Errorf("no SQL migrations available for the local database")
	}

	path := a.cfg.DatabasePath(a.userPath)
	store, err := playlists.Open(path, a.deps.SQLFiles, a.logger.Named("playlists"))
	if err != nil {
		return nil, fmt.Errorf("opening local database %s: %w", path, err)
	}
	return store, nil
}

// openBackend returns the queue the commands work on: the player's queue or
// a local copy of it when --local is used. The returned function releases it.
func (a *app) openBackend(ctx context.Context) (backend, func() error, error) {
	if a.flags.local == "" {
		client, err := a.lyrionClient()
		if err != nil {
			return nil, nil, err
		}
		return client, func() error { return nil }, nil
	}

	store, err := a.openStore()
	if err != nil {
		return nil, nil, err
	}

	id, err := store.Find(ctx, a.flags.local)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("local copy %q: %w", a.flags.local, err)
	}

	return store.Sequence(id, a.groupBy()), store.Close, nil
}
