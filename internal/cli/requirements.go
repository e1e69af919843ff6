package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/resumegen/resumegen/internal/requirements"
	"github.com/spf13/cobra"
)

var requirementsJSON bool

func init() {
	requirementsCmd.Flags().BoolVar(&requirementsJSON, "json", false, "Print as a JSON array")
	rootCmd.AddCommand(requirementsCmd)
}

var requirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "List the dependencies declared in requirements.txt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveProjectDir()
		if err != nil {
			return err
		}

		reqs, err := requirements.Read(filepath.Join(root, requirements.FileName))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if requirementsJSON {
			data, err := json.MarshalIndent(reqs, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling requirements: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		for _, r := range reqs {
			fmt.Fprintln(out, r)
		}
		return nil
	},
}
