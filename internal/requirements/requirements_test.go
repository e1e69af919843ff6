package requirements

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReqs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRead_DropsEditableSentinel(t *testing.T) {
	path := writeReqs(t, "requests\n-e .\nflask\n")

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"requests", "flask"}, got)
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRead_DirectoryIsTreatedAsMissing(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_TrimsAndKeepsOrder(t *testing.T) {
	path := writeReqs(t, "  pandas==2.1.0  \r\n\n\tnumpy\n   \nscikit-learn>=1.3\n")

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pandas==2.1.0", "numpy", "scikit-learn>=1.3"}, got)
}

func TestRead_RemovesEverySentinel(t *testing.T) {
	path := writeReqs(t, "-e .\nrequests\n  -e .  \nflask\n-e .")

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"requests", "flask"}, got)
}

func TestRead_PassesThroughDuplicatesAndMalformed(t *testing.T) {
	path := writeReqs(t, "flask\nflask\n-e ./other\n===bogus\n")

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"flask", "flask", "-e ./other", "===bogus"}, got)
}

func TestRead_LongLine(t *testing.T) {
	long := "pkg @ https://example.com/pkg.whl#sha256=" + strings.Repeat("a", 200*1024)
	got, err := Read(writeReqs(t, "requests\n"+long+"\r\nflask"))
	require.NoError(t, err)
	assert.Equal(t, []string{"requests", long, "flask"}, got)
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestName(t *testing.T) {
	tests := []struct {
		specifier string
		want      string
	}{
		{"flask", "flask"},
		{"flask>=2.0", "flask"},
		{"requests[security]==2.31", "requests"},
		{"uvicorn ; python_version>'3.7'", "uvicorn"},
		{"pkg @ https://example.com/pkg.whl", "pkg"},
		{"  numpy~=1.26  ", "numpy"},
		{"django!=4.0", "django"},
	}
	for _, tt := range tests {
		t.Run(tt.specifier, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.specifier))
		})
	}
}
