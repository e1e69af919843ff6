package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// packageMarker marks a directory as an importable package.
const packageMarker = "__init__.py"

// FindPackages returns the dotted names of all packages under root, sorted.
// Only directories that are packages themselves are descended into, so a
// package nested below a plain directory is not found. Directories whose
// name contains a dot, and __pycache__, are ignored. Other names are not
// checked for being valid identifiers.
func FindPackages(root string) ([]string, error) {
	pkgs := []string{}

	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return pkgs, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // skip inaccessible entries
		}
		if !d.IsDir() || path == root {
			return nil
		}

		name := d.Name()
		if strings.Contains(name, ".") || name == "__pycache__" {
			return filepath.SkipDir
		}
		if !isPackage(path) {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return filepath.SkipDir
		}
		pkgs = append(pkgs, strings.ReplaceAll(filepath.ToSlash(rel), "/", "."))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering packages in %s: %w", root, err)
	}

	sort.Strings(pkgs)
	return pkgs, nil
}

func isPackage(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, packageMarker))
	return err == nil && !info.IsDir()
}
