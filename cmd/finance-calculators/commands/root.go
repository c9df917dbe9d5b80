package commands

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/internal/logging"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// app is the state shared by subcommands once the root command has run.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string

	conf     *config.Configuration
	logger   *zap.Logger
	registry *calculator.Registry
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "finance-calculators",
		Short:        "Personal finance calculators for the command line and HTTP",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to configuration file (default "+constants.DefaultConfigFile+" when present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&a.outputFormat, "output", "o", "", "output format override: pretty, json")

	root.AddCommand(listCmd(a), describeCmd(a), calcCmd(a), serveCmd(a), versionCmd())
	return root
}

func (a *app) setup() error {
	path := a.configPath
	if path == "" {
		if _, err := os.Stat(constants.DefaultConfigFile); err == nil {
			path = constants.DefaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	conf, err := config.LoadConfiguration(path)
	if err != nil {
		return err
	}

	logger, err := logging.New(conf.Logging, a.logLevel)
	if err != nil {
		return err
	}

	if a.outputFormat != "" {
		format := strings.ToLower(strings.TrimSpace(a.outputFormat))
		if err := validation.ValidateOutputFormat(format); err != nil {
			return err
		}
		conf.Output.Format = format
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "commands.setup"),
		)
	}

	registry, err := calculator.NewDefaultRegistry(logger, conf.Tax)
	if err != nil {
		return err
	}

	a.conf = conf
	a.logger = logger
	a.registry = registry
	return nil
}

func (a *app) jsonOutput() bool {
	return a.conf.Output.Format == constants.OutputFormatJSON
}
