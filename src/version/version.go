/*
Package version provides version information and utilities.
*/
package version

import (
	"fmt"
	"io"
	"runtime"
)

// Version stores the current version of albumchunks. It is set during building
// with -ldflags "-X github.com/ironsmile/albumchunks/src/version.Version=...".
var Version = "dev-unreleased"

// Print writes a plain text version information in out.
func Print(out io.Writer) {
	fmt.Fprintf(out, "albumchunks %s, queue reordering for Lyrion\n", Version)
	fmt.Fprintf(out, "Build with %s on %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
