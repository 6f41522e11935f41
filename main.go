// Reorders the queue of a Lyrion player into random chunks of albums.
//
// This file is only here to make installing with go install easier. The
// source lives in the src directory.
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/ironsmile/albumchunks/src"
)

// sqlFilesFS is the directory with the sql-migrate migrations of the local
// playlists database. If the embedded directory name changes, remember to
// change it in main() too.
//
//go:embed sqls
var sqlFilesFS embed.FS

func main() {
	sqls, err := fs.Sub(sqlFilesFS, "sqls")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading sqls subFS: %s\n", err)
		os.Exit(1)
	}

	src.Main(sqls)
}
