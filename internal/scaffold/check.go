package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Check reports which layout entries and root files are absent under root
// without creating anything. Each path is written to w as an [ OK ], [MISS]
// or [WARN] line; w may be nil. A dangling symlink at a file path gets a
// warning but is not missing, since Build leaves it alone. The returned
// paths are slash-separated.
func Check(root string, layout Layout, w io.Writer) []string {
	if w == nil {
		w = io.Discard
	}

	var missing []string
	check := func(rel string, wantDir bool) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		// Directories are resolved like ensureDir does, files like ensureFile.
		stat := os.Lstat
		if wantDir {
			stat = os.Stat
		}
		info, err := stat(path)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  [MISS] %s does not exist\n", rel)
			missing = append(missing, rel)
		case wantDir && !info.IsDir():
			fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", rel)
			missing = append(missing, rel)
		case !wantDir && info.IsDir():
			fmt.Fprintf(w, "  [WARN] %s is a directory, expected a file\n", rel)
			missing = append(missing, rel)
		case info.Mode()&fs.ModeSymlink != 0 && !exists(path):
			fmt.Fprintf(w, "  [WARN] %s is a dangling symlink\n", rel)
		default:
			fmt.Fprintf(w, "  [ OK ] %s\n", rel)
		}
	}

	for _, e := range layout {
		check(e.Dir, true)
		for _, name := range e.Files {
			check(e.Dir+"/"+name, false)
		}
	}
	for _, name := range rootFiles {
		check(name, false)
	}
	return missing
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
