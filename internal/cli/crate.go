package cli

import (
	"github.com/spf13/cobra"

	"github.com/iamochuko/contract-source-metadata/pkg/integrations"
	"github.com/iamochuko/contract-source-metadata/pkg/integrations/crates"
)

// crateCommand looks up a published crate's version and repository.
func (c *CLI) crateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "crate <name>",
		Short: "Show source metadata for a crate published on crates.io",
		Example: `  sourcemeta crate serde
  sourcemeta crate cosmwasm-std --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			client := crates.NewClientWithBaseURL(integrations.NewHTTPClient(cfg.Crates.Timeout), cfg.Crates.BaseURL)

			prog := newProgress(logger)
			m, err := client.SourceMetadata(ctx, args[0])
			if err != nil {
				return err
			}
			prog.done("Fetched " + args[0])

			return printMetadata(cmd, m, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print metadata as JSON")
	return cmd
}
