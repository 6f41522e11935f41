package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironsmile/albumchunks/src/queue"
	"github.com/ironsmile/albumchunks/src/version"
)

const (
	reorderedMessage = "Queue reordered successfully!"
	shuffledMessage  = "Albums shuffled successfully!"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func (a *app) reorderCommand() *cobra.Command {
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Reorder the queue into chunks of tracks from the same album",
		Long: `Reorders the queue so that at most --chunk-size tracks of the same album
play in a row. Albums are visited in random order, which is drawn anew
for every round, until no tracks are left.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("chunk-size") {
				chunkSize = a.cfg.ChunkSize
			}
			if err := a.reorder(cmd.Context(), chunkSize); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reorderedMessage)
			return nil
		},
	}

	cmd.Flags().IntVarP(&chunkSize, "chunk-size", "n", 0,
		"tracks of the same album in a row (default from the configuration)")

	return cmd
}

func (a *app) shuffleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle",
		Short: "Shuffle whole albums in the queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.shuffle(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), shuffledMessage)
			return nil
		},
	}
}

func (a *app) lsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [begin] [end]",
		Short: "List artist and title of the queue entries in [begin, end)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <name>",
		Short: "Copy the player's queue into a local playlist named <name>",
		Long: `Copies the player's queue into the local database. Use --local <name>
with the other commands to try them on the copy without touching the player.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.importQueue(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove the local playlist named <name>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.deleteLocal(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version.Print(cmd.OutOrStdout())
		},
	}
}

func (a *app) reorder(ctx context.Context, chunkSize int) error {
	return a.withDriver(ctx, "reorder", func(d *queue.Driver) (queue.Result, error) {
		return d.Reorder(ctx, chunkSize)
	})
}

func (a *app) shuffle(ctx context.Context) error {
	return a.withDriver(ctx, "shuffle", func(d *queue.Driver) (queue.Result, error) {
		return d.Shuffle(ctx)
	})
}

func (a *app) withDriver(
	ctx context.Context,
	op string,
	run func(*queue.Driver) (queue.Result, error),
) error {
	seq, closeFn, err := a.openBackend(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeFn()
	}()

	driver := queue.NewDriver(seq, a.random(), a.logger.Named("queue"))
	res, err := run(driver)
	if err != nil {
		a.logger.Error("run aborted",
			zap.String("op", op),
			zap.Int("moves", res.Moves),
			zap.Int("placed", res.Placed),
			zap.Error(err),
		)
		return fmt.Errorf("%s aborted after %d moves: %w", op, res.Moves, err)
	}

	a.logger.Info("queue reordered",
		zap.String("op", op),
		zap.Int("entries", res.Placed),
		zap.Int("moves", res.Moves),
		zap.Int("passes", res.Passes),
		zap.Int("chunks", len(res.Chunks)),
	)
	return nil
}

func (a *app) list(ctx context.Context, out io.Writer, args []string) error {
	seq, closeFn, err := a.openBackend(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeFn()
	}()

	length, err := seq.Length(ctx)
	if err != nil {
		return err
	}

	begin, end := 0, length
	if len(args) > 0 {
		if begin, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("begin must be a number: %w", err)
		}
	}
	if len(args) > 1 {
		if end, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("end must be a number: %w", err)
		}
	}
	begin = min(max(begin, 0), length)
	end = min(max(end, begin), length)

	tracks, err := seq.Tracks(ctx, begin, end)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, headerStyle.Render(
		fmt.Sprintf("entries %d to %d of %d", begin, end, length),
	))
	for _, track := range tracks {
		fmt.Fprintf(out, "index %d artist %s title %s\n", track.Index, track.Artist, track.Title)
	}

	return nil
}

func (a *app) importQueue(ctx context.Context, out io.Writer, name string) error {
	if a.flags.local != "" {
		return fmt.Errorf("import reads from the player and cannot be used with --local")
	}

	client, err := a.lyrionClient()
	if err != nil {
		return err
	}

	length, err := client.Length(ctx)
	if err != nil {
		return err
	}

	tracks, err := client.Tracks(ctx, 0, length)
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := store.Create(ctx, name, tracks); err != nil {
		return fmt.Errorf("storing local copy: %w", err)
	}

	groups := mapset.NewThreadUnsafeSet[queue.GroupKey]()
	for _, track := range tracks {
		groups.Add(track.Key(a.groupBy()))
	}

	fmt.Fprintf(out, "Imported %d tracks in %d groups as %q.\n",
		len(tracks), groups.Cardinality(), name)
	return nil
}

func (a *app) deleteLocal(ctx context.Context, out io.Writer, name string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Find(ctx, name)
	if err != nil {
		return fmt.Errorf("local copy %q: %w", name, err)
	}

	if err := store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting local copy %q: %w", name, err)
	}

	fmt.Fprintf(out, "Deleted %q.\n", name)
	return nil
}
