// Package cli is the command line front end over the domains service
package cli

import (
	"encoding/json"
	"io"
	"os"

	"seekdomains/internal/platform/config/raw"
	"seekdomains/internal/platform/logger"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non zero on failure
func Execute() {
	cmd := newRootCmd(openApp)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(open opener) *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:          "seekdomains",
		Short:        "Generate brandable domain names and keep the available ones",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if envFile != "" {
				_ = os.Setenv("ENV_FILE", envFile)
			}
			if err := raw.LoadDotenv(); err != nil {
				logger.Get().Warn().Err(err).Msg("dotenv load failed")
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load instead of .env.local and .env")

	cmd.AddCommand(
		generateCmd(open),
		checkCmd(open),
		listCmd(open),
		migrateCmd(open),
	)
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
