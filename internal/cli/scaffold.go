package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaffoldCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Create the project skeleton without touching existing files",
	Long: `Create the backend, frontend and cloud directories with empty placeholder
files, plus a default .gitignore and README.md. Anything that already exists
is skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveProjectDir()
		if err != nil {
			return err
		}
		return runScaffold(cmd.OutOrStdout(), root)
	},
}
