package cli

import (
	"github.com/spf13/cobra"

	"github.com/iamochuko/contract-source-metadata/pkg/buildinfo"
)

// versionCommand reports this binary's own source metadata. sourcemeta
// follows the convention it implements: the version is the build commit and
// the link is its repository.
func (c *CLI) versionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show sourcemeta's own build and source metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := buildinfo.Provider().ContractSourceMetadata()
			if asJSON {
				return printMetadata(cmd, m, true)
			}
			w := cmd.OutOrStdout()
			printTitle(w, appName)
			printKeyValue(w, "version", buildinfo.Version)
			printKeyValue(w, "commit", buildinfo.Commit)
			printKeyValue(w, "built", buildinfo.Date)
			printLink(w, "source", m.Link())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print source metadata as JSON")
	return cmd
}
