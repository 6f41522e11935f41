//go:build windows

package helpers

import "os"

// appDir is the name of the application directory in %APPDATA%
const appDir = "albumchunks"

func userBaseDir() (string, error) {
	return os.Getenv("APPDATA"), nil
}
