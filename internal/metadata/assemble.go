package metadata

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/resumegen/resumegen/internal/requirements"
	"go.yaml.in/yaml/v3"
)

//go:embed package.yaml
var rawPackage []byte

// ReadmeFile is the file whose contents become the long description.
const ReadmeFile = "README.md"

// Defaults returns the static part of the declaration parsed from the
// embedded package.yaml. Each call returns a fresh value.
func Defaults() (*Metadata, error) {
	var m Metadata
	if err := yaml.Unmarshal(rawPackage, &m); err != nil {
		return nil, fmt.Errorf("parsing embedded package.yaml: %w", err)
	}
	return &m, nil
}

// Assemble builds the full declaration for the project at root.
func Assemble(root string) (*Metadata, error) {
	m, err := Defaults()
	if err != nil {
		return nil, err
	}

	long, err := readOptional(filepath.Join(root, ReadmeFile))
	if err != nil {
		return nil, err
	}
	m.LongDescription = long

	reqs, err := requirements.Read(filepath.Join(root, requirements.FileName))
	if err != nil {
		return nil, err
	}
	m.InstallRequires = reqs

	pkgs, err := FindPackages(root)
	if err != nil {
		return nil, err
	}
	m.Packages = pkgs

	slog.Debug("metadata assembled", "name", m.Name, "version", m.Version,
		"requires", len(m.InstallRequires), "packages", len(m.Packages))
	return m, nil
}

// readOptional returns the file's contents, or "" if it does not exist.
func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
