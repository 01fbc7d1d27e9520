package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrDestinationExists means the target path is already occupied and
// overwriting was not requested.
var ErrDestinationExists = errors.New("destination already exists")

// Executor moves a file into place.
type Executor struct {
	Fs        afero.Fs
	DryRun    bool
	Overwrite bool
}

// Execute renames src to dst, creating parent directories. A dry run
// touches nothing.
func (e *Executor) Execute(src, dst string) error {
	if e.DryRun {
		return nil
	}
	if err := e.Fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}
	if !e.Overwrite {
		if _, err := e.Fs.Stat(dst); err == nil {
			return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
		}
	}
	if err := e.Fs.Rename(src, dst); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
