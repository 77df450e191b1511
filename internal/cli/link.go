package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamochuko/contract-source-metadata/internal/config"
	"github.com/iamochuko/contract-source-metadata/pkg/errors"
	"github.com/iamochuko/contract-source-metadata/pkg/manifest"
)

// linkResult is the --json shape of the link command.
type linkResult struct {
	Link   string `json:"link"`
	Status string `json:"status"`
	Path   string `json:"path"`
	Reader string `json:"reader,omitempty"`
	Error  string `json:"error,omitempty"`
}

type linkOptions struct {
	allowEmpty bool
	json       bool
}

// linkCommand resolves a manifest's repository with the structured readers.
func (c *CLI) linkCommand() *cobra.Command {
	var opts linkOptions

	cmd := &cobra.Command{
		Use:   "link [path]",
		Short: "Print the repository link declared in a manifest",
		Long: `Parse a build manifest and print its declared repository link.

path may be a manifest file or a directory; for a directory the known manifests
(Cargo.toml, package.json, pyproject.toml, go.mod, composer.json, pom.xml) are
tried in order. Defaults to the configured manifest (./Cargo.toml).`,
		Example: `  sourcemeta link
  sourcemeta link ./contracts/token
  sourcemeta link package.json --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, config.KeyManifest)
			if err != nil {
				return err
			}
			path := cfg.Manifest
			if len(args) == 1 {
				path = args[0]
			}
			return c.runLink(cmd, path, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.allowEmpty, "allow-empty", false, "exit 0 when no link is found")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the lookup result as JSON")
	return cmd
}

func (c *CLI) runLink(cmd *cobra.Command, path string, opts linkOptions) error {
	if err := errors.ValidateManifestPath(path); err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	w := cmd.OutOrStdout()

	res := manifest.Lookup(ctx, path)
	logger.Debug("Lookup finished", "path", res.Path, "status", res.Status)

	if opts.json {
		out := linkResult{Link: res.Link, Status: res.Status.String(), Path: res.Path, Reader: res.Reader}
		if res.Err != nil {
			out.Error = errors.UserMessage(res.Err)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else if res.OK() {
		fmt.Fprintln(w, res.Link)
		printSuccess(cmd.ErrOrStderr(), "Found in %s", res.Path)
	}

	switch {
	case res.OK():
		return nil
	case opts.allowEmpty:
		if !opts.json {
			printWarning(cmd.ErrOrStderr(), "%s", errors.UserMessage(res.Err))
		}
		return nil
	default:
		return res.Err
	}
}
