package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/internal/logging"
	"github.com/iwvelando/finance-calculators/internal/server"
	"github.com/iwvelando/finance-calculators/pkg/constants"
)

type serveOptions struct {
	address        string
	maxRequestSize string
	serverConfig   string
}

// serveDeps is what the server runs with once flags and the server config
// have been applied.
type serveDeps struct {
	cfg      *server.Config
	logger   *zap.Logger
	registry *calculator.Registry
	sync     func()
}

func serveCmd(a *app) *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := a.prepareServe(opts)
			if err != nil {
				return err
			}
			defer deps.sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := server.NewHandler(deps.logger, deps.registry, deps.cfg.RequestSizeBytes(), Version)
			deps.logger.Info("starting calculator server",
				zap.String("op", "commands.serve"),
				zap.String("address", deps.cfg.Address),
				zap.Int64("maxRequestSize", deps.cfg.RequestSizeBytes()),
				zap.String("version", Version),
			)
			return server.Serve(ctx, deps.logger, deps.cfg, handler)
		},
	}
	cmd.Flags().StringVar(&opts.address, "address", "", "listen address override (default "+constants.DefaultServerAddress+")")
	cmd.Flags().StringVar(&opts.maxRequestSize, "max-request-size", "", "request body limit override, e.g. 128K or 1M")
	cmd.Flags().StringVar(&opts.serverConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	return cmd
}

// prepareServe loads the server config and applies flag overrides. A logging
// section in the server config gets its own logger, and the registry is
// rebuilt on it so calculation logs land in the same place as request logs.
func (a *app) prepareServe(opts serveOptions) (*serveDeps, error) {
	cfg, err := server.LoadConfig(opts.serverConfig)
	if err != nil {
		return nil, err
	}
	if opts.address != "" {
		cfg.Address = opts.address
	}
	if opts.maxRequestSize != "" {
		size, err := server.ParseSize(opts.maxRequestSize)
		if err != nil {
			return nil, fmt.Errorf("invalid --max-request-size: %w", err)
		}
		if size <= 0 {
			return nil, fmt.Errorf("invalid --max-request-size %q: must be positive", opts.maxRequestSize)
		}
		cfg.SetRequestSizeBytes(size)
	}

	deps := &serveDeps{cfg: cfg, logger: a.logger, registry: a.registry, sync: func() {}}
	if cfg.Logging == (config.LoggingConfig{}) {
		return deps, nil
	}

	logger, err := logging.New(cfg.Logging, a.logLevel)
	if err != nil {
		return nil, err
	}
	registry, err := calculator.NewDefaultRegistry(logger, a.conf.Tax)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	deps.logger = logger
	deps.registry = registry
	deps.sync = func() { _ = logger.Sync() }
	return deps, nil
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
	// No configuration is needed to print the version.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil }
	return cmd
}
