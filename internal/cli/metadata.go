package cli

import (
	"github.com/resumegen/resumegen/internal/metadata"
	"github.com/spf13/cobra"
)

var metadataFormat string

func init() {
	metadataCmd.Flags().StringVar(&metadataFormat, "format", "", "Output format: yaml, json or pkg-info (default from config)")
	rootCmd.AddCommand(metadataCmd)
}

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Print the package metadata without scaffolding",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := resolveFormat(cmd, metadataFormat)
		if err := metadata.CheckFormat(format); err != nil {
			return err
		}

		root, err := resolveProjectDir()
		if err != nil {
			return err
		}

		m, err := assembleValid(cmd.ErrOrStderr(), root)
		if err != nil {
			return err
		}
		return metadata.NewWriterRegistrar(cmd.OutOrStdout(), format).Register(m)
	},
}
