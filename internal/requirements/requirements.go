package requirements

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// EditableSentinel is the requirements line meaning "install the current
// project in editable mode".
const EditableSentinel = "-e ."

// FileName is the conventional requirements file name at a project root.
const FileName = "requirements.txt"

// Read returns the specifiers listed in the file at path. A missing file
// (or a directory in its place) yields an empty list, not an error.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("opening requirements %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat requirements %s: %w", path, err)
	}
	if info.IsDir() {
		return []string{}, nil
	}

	reqs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading requirements %s: %w", path, err)
	}
	return reqs, nil
}

// Parse reads specifiers from r, one per line. Lines are trimmed, blank
// lines are dropped, and every EditableSentinel line is removed. Order is
// preserved and nothing else is validated. Lines may be of any length.
func Parse(r io.Reader) ([]string, error) {
	reqs := []string{}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" && line != EditableSentinel {
			reqs = append(reqs, line)
		}
		if errors.Is(err, io.EOF) {
			return reqs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Name returns the project-name part of a specifier, e.g. "flask" for
// "flask>=2.0; python_version>'3.7'". The specifier is returned trimmed
// when no delimiter is present.
func Name(specifier string) string {
	specifier = strings.TrimSpace(specifier)
	if i := strings.IndexAny(specifier, "<>=!~[;@ \t"); i >= 0 {
		return specifier[:i]
	}
	return specifier
}
