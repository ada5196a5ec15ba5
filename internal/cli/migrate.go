package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the result tables when missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// opening the app ensures the schema
			a, err := open(cmd.Context(), openOpts{})
			if err != nil {
				return err
			}
			a.close()
			fmt.Fprintln(cmd.OutOrStdout(), "schema ok")
			return nil
		},
	}
}
