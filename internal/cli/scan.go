package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamochuko/contract-source-metadata/pkg/manifest"
)

// scanCommand runs the legacy line scan. It never fails: an unreadable or
// unmatched manifest prints nothing.
func (c *CLI) scanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [path]",
		Short: "Run the legacy repository line scan on a manifest",
		Long: `Scan a manifest line by line for "repository" and print the extracted link.

This is the legacy best-effort scan: it does not parse the file, and prints
nothing when the file is unreadable or has no matching line.`,
		Example: `  sourcemeta scan
  sourcemeta scan crates/token/Cargo.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := manifest.DefaultManifest
			if len(args) == 1 {
				path = args[0]
			}
			loggerFromContext(cmd.Context()).Debug("Scanning", "path", path)

			if link := manifest.ReadRepositoryLink(path); link != "" {
				fmt.Fprintln(cmd.OutOrStdout(), link)
			}
			return nil
		},
	}
}
