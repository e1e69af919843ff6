package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/resumegen/resumegen/internal/platform"
)

// Permission constants for created entries.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Result holds the outcome of a build. Paths are slash-separated and
// relative to the build root, in processing order.
type Result struct {
	Root    string
	Created []string
	Skipped []string
}

// Build ensures every directory and file of layout exists under root, then
// ensures the root files. Missing files are created empty (root files get
// DefaultLine); existing ones are never opened for writing. Progress lines
// are written to w, which may be nil.
func Build(root string, layout Layout, w io.Writer) (*Result, error) {
	if w == nil {
		w = io.Discard
	}
	b := &builder{root: root, w: w, result: &Result{Root: root}, made: map[string]bool{}}

	for _, e := range layout {
		if err := b.ensureDir(e.Dir); err != nil {
			return nil, err
		}
		for _, name := range e.Files {
			if err := b.ensureFile(e.Dir+"/"+name, ""); err != nil {
				return nil, err
			}
		}
	}

	for _, name := range rootFiles {
		if err := b.ensureFile(name, DefaultLine); err != nil {
			return nil, err
		}
	}

	slog.Debug("scaffold complete", "root", root,
		"created", len(b.result.Created), "skipped", len(b.result.Skipped))
	return b.result, nil
}

type builder struct {
	root   string
	w      io.Writer
	result *Result
	made   map[string]bool // directories created by this run
}

func (b *builder) abs(rel string) string {
	return filepath.Join(b.root, filepath.FromSlash(rel))
}

// ensureDir creates a directory (and parents) if it doesn't exist. Parents
// made here are remembered, so when one of them is visited later as its own
// entry it is reported as created rather than skipped.
func (b *builder) ensureDir(rel string) error {
	path := b.abs(rel)
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		if b.made[rel] {
			delete(b.made, rel)
			b.created(rel + "/")
			b.result.Created = append(b.result.Created, rel)
			return nil
		}
		fmt.Fprintf(b.w, "  [SKIP] %s already exists\n", rel)
		b.result.Skipped = append(b.result.Skipped, rel)
		return nil
	}

	missing := b.missingDirs(rel)
	if err := os.MkdirAll(path, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll's mode is filtered by the umask.
	for _, dir := range missing {
		if err := platform.Chmod(b.abs(dir), DirPerm); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", b.abs(dir), err)
		}
		b.made[dir] = true
	}
	b.created(rel + "/")
	b.result.Created = append(b.result.Created, rel)
	return nil
}

// missingDirs returns rel and each of its ancestors below the root that do
// not exist yet, deepest first.
func (b *builder) missingDirs(rel string) []string {
	var missing []string
	for dir := rel; dir != "." && dir != "/" && dir != ""; dir = path.Dir(dir) {
		if _, err := os.Lstat(b.abs(dir)); err == nil {
			break
		}
		missing = append(missing, dir)
	}
	return missing
}

// ensureFile creates a file with content if nothing exists at rel. The
// create is exclusive: a file appearing between the check and the open is
// reported as skipped, never truncated.
func (b *builder) ensureFile(rel, content string) error {
	path := b.abs(rel)
	if _, err := os.Lstat(path); err == nil {
		b.skip(rel)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	created, err := platform.CreateExclusive(path, content, FilePerm)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	if !created {
		b.skip(rel)
		return nil
	}
	// The open mode is filtered by the umask too.
	if err := platform.Chmod(path, FilePerm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}

	b.created(rel)
	b.result.Created = append(b.result.Created, rel)
	return nil
}

func (b *builder) created(rel string) {
	fmt.Fprintf(b.w, "  [ OK ] Created %s\n", rel)
}

func (b *builder) skip(rel string) {
	fmt.Fprintf(b.w, "  [SKIP] %s already exists\n", rel)
	b.result.Skipped = append(b.result.Skipped, rel)
}
