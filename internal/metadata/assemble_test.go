package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/resumegen/resumegen/internal/scaffold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	m, err := Defaults()
	require.NoError(t, err)

	assert.Equal(t, "AIPoweredResumeGenerator", m.Name)
	assert.Equal(t, "0.0.1", m.Version)
	assert.Equal(t, "IbnAbbas", m.Author)
	assert.Equal(t, "text/markdown", m.LongDescriptionContentType)
	assert.Equal(t, ">=3.7", m.PythonRequires)
	assert.Len(t, m.Classifiers, 4)
	assert.Contains(t, m.Classifiers, "License :: OSI Approved :: MIT License")
}

func TestDefaultsIsFresh(t *testing.T) {
	a, err := Defaults()
	require.NoError(t, err)
	a.Name = "changed"
	a.Classifiers[0] = "changed"

	b, err := Defaults()
	require.NoError(t, err)
	assert.Equal(t, "AIPoweredResumeGenerator", b.Name)
	assert.Equal(t, "Programming Language :: Python :: 3", b.Classifiers[0])
}

func TestAssemble_EmptyProject(t *testing.T) {
	m, err := Assemble(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", m.LongDescription)
	assert.Equal(t, []string{}, m.InstallRequires)
	assert.Equal(t, []string{}, m.Packages)
}

func TestAssemble_ReadsProjectFiles(t *testing.T) {
	root := t.TempDir()
	readme := "# Resume Generator\n\nBuilds resumes.\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte(readme), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("fastapi\n-e .\nuvicorn\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "backend", "app"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "backend", "__init__.py"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "backend", "app", "__init__.py"), nil, 0644))

	m, err := Assemble(root)
	require.NoError(t, err)

	assert.Equal(t, readme, m.LongDescription)
	assert.Equal(t, []string{"fastapi", "uvicorn"}, m.InstallRequires)
	assert.Equal(t, []string{"backend", "backend.app"}, m.Packages)
}

func TestAssemble_AfterScaffold(t *testing.T) {
	root := t.TempDir()
	_, err := scaffold.Build(root, scaffold.DefaultLayout(), nil)
	require.NoError(t, err)

	m, err := Assemble(root)
	require.NoError(t, err)

	assert.Equal(t, scaffold.DefaultLine, m.LongDescription)
	// backend/ carries no __init__.py, so backend/app is unreachable.
	assert.Empty(t, m.Packages)

	result, err := Validate(m)
	require.NoError(t, err)
	assert.True(t, result.Valid, "issues: %v", result.Issues)
}

func TestAssemble_UnreadableReadme(t *testing.T) {
	root := t.TempDir()
	// A directory in place of README.md is a read error, not "missing".
	require.NoError(t, os.Mkdir(filepath.Join(root, "README.md"), 0755))

	_, err := Assemble(root)
	assert.Error(t, err)
}
