// Package cli implements the sourcemeta command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iamochuko/contract-source-metadata/internal/config"
	"github.com/iamochuko/contract-source-metadata/pkg/buildinfo"
	"github.com/iamochuko/contract-source-metadata/pkg/errors"
	"github.com/iamochuko/contract-source-metadata/pkg/manifest"
	"github.com/iamochuko/contract-source-metadata/pkg/observability"
	"github.com/iamochuko/contract-source-metadata/pkg/sourcemeta"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and config lookup.
const appName = "sourcemeta"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "sourcemeta exposes contract source metadata",
		Long: `sourcemeta reports where a contract's source lives: a version identifier and
a link to the public repository, read from the project's build manifest.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetScanHooks(scanLogger{logger: c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: ./sourcemeta.yaml if present)")

	root.AddCommand(c.scanCommand())
	root.AddCommand(c.linkCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.crateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config Helpers
// =============================================================================

// loadConfig resolves configuration for cmd, binding any of keys that cmd
// declares as flags.
func (c *CLI) loadConfig(cmd *cobra.Command, keys ...string) (*config.Config, error) {
	v := config.New(c.configFile)
	if err := config.BindFlags(v, cmd.Flags(), keys...); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if used := v.ConfigFileUsed(); used != "" {
		loggerFromContext(cmd.Context()).Debug("Loaded config", "file", used)
	}
	return cfg, nil
}

// =============================================================================
// Provider Factory
// =============================================================================

// manifestProvider builds a provider reporting cfg.Version (or the build
// identifier) and the link declared in cfg.Manifest. A failed lookup is
// logged and leaves the link empty; only an unusable manifest path fails.
func manifestProvider(ctx context.Context, cfg *config.Config) (sourcemeta.Provider, manifest.Result, error) {
	if err := errors.ValidateManifestPath(cfg.Manifest); err != nil {
		return nil, manifest.Result{}, err
	}
	logger := loggerFromContext(ctx)

	version := cfg.Version
	if version == "" {
		version = buildinfo.Identifier()
	}

	res := manifest.Lookup(ctx, cfg.Manifest)
	if !res.OK() {
		logger.Warn("No repository link", "manifest", cfg.Manifest, "status", res.Status, "err", res.Err)
	} else {
		logger.Debug("Resolved repository link", "manifest", res.Path, "reader", res.Reader, "link", res.Link)
	}

	return sourcemeta.Static(sourcemeta.New(version, res.Link)), res, nil
}
