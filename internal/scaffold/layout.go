package scaffold

// Entry is one directory of the skeleton and the files it must contain.
// An empty Files list only guarantees the directory.
type Entry struct {
	Dir   string
	Files []string
}

// Layout is the ordered set of entries a build processes.
type Layout []Entry

// DefaultLine is written to newly created root files.
const DefaultLine = "# Resume & Cover Letter Generator\n"

// RootFiles are ensured at the project root after the layout, each seeded
// with DefaultLine.
var rootFiles = [...]string{".gitignore", "README.md"}

// RootFiles returns the root-level files every build ensures.
func RootFiles() []string {
	return append([]string(nil), rootFiles[:]...)
}

// DefaultLayout returns the project skeleton. Each call builds a fresh
// value, so callers may not alter the layout seen by anyone else.
func DefaultLayout() Layout {
	return Layout{
		{Dir: "backend/app", Files: []string{"__init__.py", "main.py", "models.py", "routes.py", "database.py", "utils.py"}},
		{Dir: "backend", Files: []string{"requirements.txt", "Dockerfile"}},
		{Dir: "frontend/public"},
		{Dir: "frontend/src/components", Files: []string{"Header.js", "Dashboard.js", "ResumeForm.js"}},
		{Dir: "frontend/src", Files: []string{"App.js", "index.js", "styles.css"}},
		{Dir: "frontend", Files: []string{"package.json", "Dockerfile"}},
		{Dir: "cloud/aws", Files: []string{"cloudformation.yaml"}},
		{Dir: "cloud/gcp", Files: []string{"app.yaml"}},
	}
}

// Paths lists every slash-separated path the layout implies, in the order
// Build visits them: each directory followed by its files, then the root
// files.
func Paths(layout Layout) []string {
	var paths []string
	for _, e := range layout {
		paths = append(paths, e.Dir)
		for _, f := range e.Files {
			paths = append(paths, e.Dir+"/"+f)
		}
	}
	return append(paths, rootFiles[:]...)
}
