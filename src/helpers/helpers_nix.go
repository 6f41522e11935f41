//go:build !windows

/*
   Helpers for all non-windows machines
*/

package helpers

import "os"

// appDir is the name of the application directory in the user's home directory
const appDir = ".albumchunks"

func userBaseDir() (string, error) {
	return os.UserHomeDir()
}
