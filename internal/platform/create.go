package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// CreateExclusive creates path with content only if nothing exists there.
// It reports created=false, with a nil error, when the path is already
// taken, including when another process wins the race between a caller's
// existence check and this call. An existing file is never opened for
// writing.
func CreateExclusive(path, content string, perm os.FileMode) (created bool, err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}

	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return true, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return true, fmt.Errorf("closing %s: %w", path, err)
	}
	return true, nil
}
