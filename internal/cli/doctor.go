package cli

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/resumegen/resumegen/internal/branding"
	"github.com/resumegen/resumegen/internal/metadata"
	"github.com/resumegen/resumegen/internal/requirements"
	"github.com/resumegen/resumegen/internal/scaffold"
	"github.com/spf13/cobra"
)

// pythonVersion returns the output of "python3 --version". Tests replace it.
var pythonVersion = func() (string, error) {
	bin, err := exec.LookPath("python3")
	if err != nil {
		return "", err
	}
	out, err := exec.Command(bin, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", bin, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the project tree",
	Long: `Report missing skeleton entries, validate the package metadata and check
the local Python interpreter against python_requires. Nothing is created.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveProjectDir()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		problems := 0

		fmt.Fprintln(out, "Scaffold check:")
		if missing := scaffold.Check(root, scaffold.DefaultLayout(), out); len(missing) > 0 {
			fmt.Fprintf(out, "         Run '%s scaffold' to create %d missing entries\n", branding.CLIName(), len(missing))
			problems += len(missing)
		}

		fmt.Fprintln(out, "Requirements check:")
		if err := checkRequirements(out, root); err != nil {
			problems++
		}

		fmt.Fprintln(out, "Metadata check:")
		m, err := checkMetadata(out, root)
		if err != nil {
			problems++
		}

		fmt.Fprintln(out, "Runtime check:")
		if m != nil {
			checkPython(out, m.PythonRequires)
		} else {
			fmt.Fprintln(out, "  [SKIP] python_requires unavailable")
		}

		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		return nil
	},
}

func checkRequirements(w io.Writer, root string) error {
	path := filepath.Join(root, requirements.FileName)
	reqs, err := requirements.Read(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return err
	}
	if len(reqs) == 0 {
		fmt.Fprintf(w, "  [INFO] No dependencies declared in %s\n", requirements.FileName)
		return nil
	}

	names := make([]string, 0, len(reqs))
	for _, r := range reqs {
		names = append(names, requirements.Name(r))
	}
	fmt.Fprintf(w, "  [ OK ] %d dependencies: %s\n", len(reqs), strings.Join(names, ", "))
	return nil
}

func checkMetadata(w io.Writer, root string) (*metadata.Metadata, error) {
	m, err := metadata.Assemble(root)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return nil, err
	}

	result, err := metadata.Validate(m)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return m, err
	}
	if !result.Valid {
		printIssues(w, result.Issues)
		return m, fmt.Errorf("metadata has %d validation issue(s)", len(result.Issues))
	}

	fmt.Fprintf(w, "  [ OK ] Valid metadata: %s (v%s)\n", m.Name, m.Version)
	return m, nil
}

func checkPython(w io.Writer, constraint string) {
	version, err := pythonVersion()
	switch {
	case errors.Is(err, exec.ErrNotFound):
		fmt.Fprintf(w, "  [MISS] python3 not found\n")
		return
	case err != nil:
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}

	ok, err := metadata.SatisfiesPython(constraint, version)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [WARN] %v\n", err)
	case !ok:
		fmt.Fprintf(w, "  [WARN] %s does not satisfy python_requires %s\n", version, constraint)
	default:
		fmt.Fprintf(w, "  [ OK ] %s satisfies python_requires %s\n", version, constraint)
	}
}
