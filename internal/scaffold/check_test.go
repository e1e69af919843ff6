package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/resumegen/resumegen/internal/platform"
)

func TestCheckEmptyRoot(t *testing.T) {
	root := t.TempDir()

	var buf bytes.Buffer
	missing := Check(root, DefaultLayout(), &buf)

	if len(missing) != len(Paths(DefaultLayout())) {
		t.Errorf("missing %d paths, want %d", len(missing), len(Paths(DefaultLayout())))
	}
	if !strings.Contains(buf.String(), "[MISS] backend/app/__init__.py") {
		t.Errorf("expected MISS line for __init__.py, got:\n%s", buf.String())
	}
	// Check must not create anything.
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Check created %d entries", len(entries))
	}
}

func TestCheckAfterBuild(t *testing.T) {
	root := t.TempDir()
	if _, err := Build(root, DefaultLayout(), nil); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if missing := Check(root, DefaultLayout(), &buf); len(missing) != 0 {
		t.Errorf("missing after build: %v", missing)
	}
	if strings.Contains(buf.String(), "[MISS]") {
		t.Errorf("unexpected MISS lines:\n%s", buf.String())
	}
}

func TestCheckReportsWrongKind(t *testing.T) {
	root := t.TempDir()
	if _, err := Build(root, DefaultLayout(), nil); err != nil {
		t.Fatal(err)
	}
	readme := filepath.Join(root, "README.md")
	if err := os.Remove(readme); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(readme, 0755); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	missing := Check(root, DefaultLayout(), &buf)
	if len(missing) != 1 || missing[0] != "README.md" {
		t.Errorf("missing = %v, want [README.md]", missing)
	}
	if !strings.Contains(buf.String(), "[WARN] README.md is a directory") {
		t.Errorf("expected WARN line, got:\n%s", buf.String())
	}
}

func TestCheckDanglingSymlinkIsNotMissing(t *testing.T) {
	if platform.IsWindows() {
		t.Skip("symlinks need extra privileges on Windows")
	}
	root := t.TempDir()
	if err := os.Symlink(filepath.Join(root, "nowhere.md"), filepath.Join(root, "README.md")); err != nil {
		t.Fatal(err)
	}

	result, err := Build(root, DefaultLayout(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !contains(result.Skipped, "README.md") {
		t.Errorf("README.md should be skipped, got %v", result.Skipped)
	}

	var buf bytes.Buffer
	if missing := Check(root, DefaultLayout(), &buf); len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
	if !strings.Contains(buf.String(), "[WARN] README.md is a dangling symlink") {
		t.Errorf("expected WARN line, got:\n%s", buf.String())
	}
}
