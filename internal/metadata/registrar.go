package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.yaml.in/yaml/v3"
)

// Registrar hands an assembled declaration to the packaging toolchain.
type Registrar interface {
	Register(m *Metadata) error
}

// Encode renders m in the given format.
func Encode(m *Metadata, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, fmt.Errorf("encoding metadata as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding metadata as yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding metadata as json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatPkgInfo:
		return renderPkgInfo(m), nil
	default:
		return nil, CheckFormat(format)
	}
}

// CheckFormat returns an error if format is not one of ValidFormats.
func CheckFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return fmt.Errorf("unknown metadata format %q: supported formats are %v", format, ValidFormats)
	}
	return nil
}

// WriterRegistrar registers metadata by encoding it to a writer.
type WriterRegistrar struct {
	w      io.Writer
	format string
}

// NewWriterRegistrar returns a Registrar that encodes to w.
func NewWriterRegistrar(w io.Writer, format string) *WriterRegistrar {
	return &WriterRegistrar{w: w, format: format}
}

// Register encodes m and writes it.
func (r *WriterRegistrar) Register(m *Metadata) error {
	data, err := Encode(m, r.format)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(data); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// FileRegistrar registers metadata by writing it to a file, creating
// parent directories as needed. An existing file is replaced.
type FileRegistrar struct {
	path   string
	format string
}

// NewFileRegistrar returns a Registrar that writes to path.
func NewFileRegistrar(path, format string) *FileRegistrar {
	return &FileRegistrar{path: path, format: format}
}

// Path returns the destination file.
func (r *FileRegistrar) Path() string { return r.path }

// Register encodes m and writes it to the destination file.
func (r *FileRegistrar) Register(m *Metadata) error {
	data, err := Encode(m, r.format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", r.path, err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("writing metadata %s: %w", r.path, err)
	}
	return nil
}
