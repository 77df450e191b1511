package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/iamochuko/contract-source-metadata/internal/config"
	"github.com/iamochuko/contract-source-metadata/pkg/errors"
	"github.com/iamochuko/contract-source-metadata/pkg/sourcemeta"
)

// showCommand prints the metadata a contract built from this project reports.
func (c *CLI) showCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show contract source metadata for a project",
		Long: `Show the version and repository link a contract would report.

The version defaults to this binary's build commit; the link is read from the
manifest (./Cargo.toml unless --manifest or config says otherwise).`,
		Example: `  sourcemeta show
  sourcemeta show --manifest contracts/token --version v1.4.0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, config.KeyManifest, config.KeyVersion)
			if err != nil {
				return err
			}
			p, res, err := manifestProvider(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := printMetadata(cmd, p.ContractSourceMetadata(), asJSON); err != nil {
				return err
			}
			if !asJSON && !res.OK() {
				printWarning(cmd.ErrOrStderr(), "%s", errors.UserMessage(res.Err))
			}
			return nil
		},
	}

	cmd.Flags().String(config.KeyManifest, "", "manifest file or project directory")
	cmd.Flags().String(config.KeyVersion, "", "version identifier to report (default: build commit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print metadata as JSON")
	return cmd
}

// printMetadata writes m as indented JSON or as styled key/value lines.
func printMetadata(cmd *cobra.Command, m sourcemeta.Metadata, asJSON bool) error {
	w := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}
	printTitle(w, "Contract source metadata")
	printKeyValue(w, "version", m.Version())
	printLink(w, "link", m.Link())
	return nil
}
