// -- cmd/templates.go --
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xkilldash9x/storeforge/internal/synth"
)

// newTemplatesCmd creates the `templates` command, which lists the base
// template catalog. The catalog is static so no components are needed.
func newTemplatesCmd() *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Lists the available base store templates",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := synth.NewCatalog().List()

			if viper.GetBool("json") {
				return writeResult(viper.GetString("output"), entries)
			}

			for _, entry := range entries {
				fmt.Printf("%-10s %s\n", entry.ID, entry.Name)
				fmt.Printf("           %s\n", entry.Description)
			}
			return nil
		},
	}

	templatesCmd.Flags().Bool("json", false, "emit the catalog as JSON")
	templatesCmd.Flags().StringP("output", "o", "", "write JSON output to this file instead of stdout")
	return templatesCmd
}
