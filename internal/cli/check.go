package cli

import (
	"fmt"

	"seekdomains/internal/services/api/domains/domain"

	"github.com/spf13/cobra"
)

func checkCmd(open opener) *cobra.Command {
	var (
		registrar string
		asJSON    bool
	)

	c := &cobra.Command{
		Use:   "check <domain>...",
		Short: "Check whether domains are available right now",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd.Context(), openOpts{pipeline: true, registrar: registrar})
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			results := make([]domain.CheckResult, 0, len(args))
			for _, d := range args {
				res, err := a.svc.Check(cmd.Context(), domain.CheckInput{Domain: d})
				if err != nil {
					return err
				}
				results = append(results, res)
			}
			if asJSON {
				return writeJSON(out, results)
			}
			for _, res := range results {
				state := "taken"
				if res.Available {
					state = "available"
				}
				fmt.Fprintf(out, "%s %s\n", res.Domain, state)
			}
			return nil
		},
	}

	c.Flags().StringVar(&registrar, "registrar", "", "Registrar: namecheap | whois (defaults to REGISTRAR_PROVIDER)")
	c.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return c
}
