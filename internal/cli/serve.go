package cli

import (
	"github.com/spf13/cobra"

	"github.com/iamochuko/contract-source-metadata/internal/config"
	"github.com/iamochuko/contract-source-metadata/pkg/serve"
)

// serveCommand hosts the project's metadata over HTTP until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve contract source metadata over HTTP",
		Long: `Serve the project's contract source metadata for off-chain indexers.

Routes:
  GET /contract_source_metadata   {"version": "...", "link": "..."}
  GET /healthz                    ok

The manifest is read once at startup.`,
		Example: `  sourcemeta serve
  sourcemeta serve --addr 127.0.0.1:9000 --manifest contracts/token`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, config.KeyAddr, config.KeyManifest, config.KeyVersion)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			p, _, err := manifestProvider(ctx, cfg)
			if err != nil {
				return err
			}

			srv := &serve.Server{
				Addr:    cfg.Addr,
				Handler: serve.NewRouter(p, logger),
				Logger:  logger,
			}
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().String(config.KeyAddr, "", "listen address (default "+config.DefaultAddr+")")
	cmd.Flags().String(config.KeyManifest, "", "manifest file or project directory")
	cmd.Flags().String(config.KeyVersion, "", "version identifier to report (default: build commit)")
	return cmd
}
