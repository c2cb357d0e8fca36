package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered content types",
	Long: `List every content type curato can create and manage, one per line
as "id<TAB>label". The id column is the stable key stored on records
and accepted by default_type in the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, desc := range contentTypes() {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", desc.ID, desc.Label); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
