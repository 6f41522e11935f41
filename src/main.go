// Package src holds the Main function of albumchunks. It is in package src
// because it is imported from the project's root folder.
package src

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/ironsmile/albumchunks/src/cli"
)

// Main runs the command line and exits with a non-zero status on error. An
// interrupt stops the run between two moves.
func Main(sqlFiles fs.FS) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.Deps{
		Fs:       afero.NewOsFs(),
		SQLFiles: sqlFiles,
	})

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
