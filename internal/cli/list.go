package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"seekdomains/internal/services/api/domains/domain"

	"github.com/spf13/cobra"
)

func listCmd(open opener) *cobra.Command {
	var (
		in       domain.ListInput
		page     int
		pageSize int
		length   int
		asJSON   bool
	)

	c := &cobra.Command{
		Use:   "list",
		Short: "Browse stored available domains",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("page") {
				in.Page = &page
			}
			if flags.Changed("page-size") {
				in.PageSize = &pageSize
			}
			if flags.Changed("char-length") {
				in.CharLength = &length
			}

			a, err := open(cmd.Context(), openOpts{})
			if err != nil {
				return err
			}
			defer a.close()

			res, err := a.svc.List(cmd.Context(), in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, d := range res.Domains {
				fmt.Fprintf(tw, "%s\t%s\n", d.Domain, d.CreatedAt.UTC().Format(time.RFC3339))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			p := res.Pagination
			fmt.Fprintf(out, "page %d/%d, %d total\n", p.CurrentPage, p.TotalPages, p.TotalCount)
			return nil
		},
	}

	c.Flags().StringVar(&in.SearchRequestID, "search-request-id", "", "Only domains found by this search")
	c.Flags().IntVar(&page, "page", 1, "Page number, 1 based")
	c.Flags().IntVar(&pageSize, "page-size", 0, "Rows per page (defaults to CORE_API_DEFAULT_PAGE_SIZE)")
	c.Flags().StringVar(&in.TLD, "tld", "", "Only this TLD, e.g. com")
	c.Flags().IntVar(&length, "char-length", 0, "Filter on the name length before the first dot")
	c.Flags().StringVar(&in.CharLengthOp, "char-length-op", domain.OpEq, "Length comparison: eq | gt | lt")
	c.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return c
}
