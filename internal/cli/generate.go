package cli

import (
	"fmt"
	"strings"

	"seekdomains/internal/services/api/domains/domain"

	"github.com/spf13/cobra"
)

func generateCmd(open opener) *cobra.Command {
	var (
		in        domain.GenerateInput
		length    string
		tlds      []string
		llm       string
		model     string
		registrar string
		asJSON    bool
	)

	c := &cobra.Command{
		Use:   "generate [request...]",
		Short: "Ask the model for names, check them and store the available ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Request == "" {
				in.Request = strings.Join(args, " ")
			}
			a, err := open(cmd.Context(), openOpts{pipeline: true, llm: llm, model: model, registrar: registrar})
			if err != nil {
				return err
			}
			defer a.close()

			in.WordLength = domain.FlexText(length)
			in.AcceptedTLDs = nil
			for _, t := range tlds {
				if t = strings.TrimSpace(t); t != "" {
					in.AcceptedTLDs = append(in.AcceptedTLDs, t)
				}
			}
			res, err := a.svc.GenerateAndCheck(cmd.Context(), in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}
			for _, d := range res.Domains {
				fmt.Fprintln(out, d.Domain)
			}
			fmt.Fprintf(out, "%d available, search %s\n", res.DomainsFound, res.SearchRequestID)
			return nil
		},
	}

	c.Flags().StringVarP(&in.Request, "request", "r", "", "What the brand is about; positional args are used when empty")
	c.Flags().StringVar(&in.SimilarTo, "similar-to", "", "Names to take inspiration from")
	c.Flags().StringVar(&length, "word-length", "", "Preferred name length, free text")
	c.Flags().StringSliceVar(&tlds, "tlds", nil, "Accepted TLDs, comma separated")
	c.Flags().StringVar(&llm, "llm", "", "Model provider: openai | anthropic (defaults to LLM_PROVIDER)")
	c.Flags().StringVar(&model, "model", "", "Model name (defaults to LLM_MODEL)")
	c.Flags().StringVar(&registrar, "registrar", "", "Registrar: namecheap | whois (defaults to REGISTRAR_PROVIDER)")
	c.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return c
}
