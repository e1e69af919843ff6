package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/resumegen/resumegen/internal/metadata"
	"github.com/resumegen/resumegen/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	setupFormat string
	setupOutput string
)

func init() {
	setupCmd.Flags().StringVar(&setupFormat, "format", "", "Metadata format: yaml, json or pkg-info (default from config)")
	setupCmd.Flags().StringVarP(&setupOutput, "output", "o", "", "Write metadata to a file instead of stdout")
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Scaffold the project and register package metadata",
	Long: `Scaffold the project skeleton, then assemble, validate and register the
package metadata.

Existing files are never modified, so setup is safe to run repeatedly.
Progress is written to stderr; the metadata goes to stdout unless --output
is given.

Examples:
  resumegen setup
  resumegen setup --dir ./resume-app --format pkg-info -o dist/PKG-INFO`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := resolveFormat(cmd, setupFormat)
		if err := metadata.CheckFormat(format); err != nil {
			return err
		}

		root, err := resolveProjectDir()
		if err != nil {
			return err
		}

		progress := cmd.ErrOrStderr()
		if setupOutput != "" {
			progress = cmd.OutOrStdout()
		}

		if err := runScaffold(progress, root); err != nil {
			return err
		}

		m, err := assembleValid(progress, root)
		if err != nil {
			return err
		}

		if setupOutput == "" {
			if err := metadata.NewWriterRegistrar(cmd.OutOrStdout(), format).Register(m); err != nil {
				return fmt.Errorf("registering metadata: %w", err)
			}
			slog.Debug("metadata registered", "format", format, "output", "stdout")
			return nil
		}

		registrar := metadata.NewFileRegistrar(setupOutput, format)
		if err := registrar.Register(m); err != nil {
			return fmt.Errorf("registering metadata: %w", err)
		}
		slog.Debug("metadata registered", "format", format, "output", registrar.Path())
		fmt.Fprintf(progress, "\nRegistered %s %s metadata at %s\n", m.Name, m.Version, registrar.Path())
		return nil
	},
}

// runScaffold builds the default layout under root and prints a summary.
func runScaffold(w io.Writer, root string) error {
	fmt.Fprintf(w, "Scaffolding project in %s\n", root)
	result, err := scaffold.Build(root, scaffold.DefaultLayout(), w)
	if err != nil {
		return fmt.Errorf("scaffolding project: %w", err)
	}
	fmt.Fprintf(w, "\n%d created, %d already present.\n", len(result.Created), len(result.Skipped))
	return nil
}

// assembleValid assembles metadata for root and fails with the issue list
// when it does not validate.
func assembleValid(w io.Writer, root string) (*metadata.Metadata, error) {
	m, err := metadata.Assemble(root)
	if err != nil {
		return nil, fmt.Errorf("assembling metadata: %w", err)
	}

	result, err := metadata.Validate(m)
	if err != nil {
		return nil, fmt.Errorf("validating metadata: %w", err)
	}
	if !result.Valid {
		printIssues(w, result.Issues)
		return nil, fmt.Errorf("metadata has %d validation issue(s)", len(result.Issues))
	}
	return m, nil
}

func printIssues(w io.Writer, issues []metadata.ValidationIssue) {
	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(issues))
	for _, issue := range issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
}
