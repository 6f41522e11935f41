// Contains few helpers functions which are used througout the project
package helpers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ProjectUserPath returns the directory in which the user's configuration and
// databases are stored. It is created when missing.
func ProjectUserPath(fs afero.Fs) (string, error) {
	base, err := userBaseDir()
	if err != nil {
		return "", err
	}
	if base == "" {
		return "", errors.New("cannot find the user's home directory")
	}

	path := filepath.Join(base, appDir)
	if err := fs.MkdirAll(path, 0o700); err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	return path, nil
}

// AbsolutePath returns `path` if it is already absolute. Otherwise it is
// joined to `root`.
func AbsolutePath(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// FileExists reports whether `path` is a regular file in `fs`.
func FileExists(fs afero.Fs, path string) bool {
	st, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return !st.IsDir()
}
