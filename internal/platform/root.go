package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// BoardDir is the hidden directory marking a board root.
const BoardDir = ".stickies"

// ErrRootNotFound is returned when no board directory exists above the start path.
var ErrRootNotFound = errors.New("board root not found")

// FindRoot looks upwards from startDir for a directory containing BoardDir
// and returns its absolute path.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(filepath.Join(dir, BoardDir)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// DefaultStore returns the board location used when none is configured:
// the BoardDir of the nearest root above startDir, or a new one in startDir.
func DefaultStore(startDir string) (string, error) {
	root, err := FindRoot(startDir)
	if errors.Is(err, ErrRootNotFound) {
		root, err = filepath.Abs(startDir)
	}
	if err != nil {
		return "", err
	}
	return filepath.Join(root, BoardDir), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
