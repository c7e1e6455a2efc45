package cli

import (
	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions is shared by every subcommand and filled in by the persistent
// pre-run.
type rootOptions struct {
	configPath string
	debug      bool
	logLevel   string
	logFormat  string

	config *config.SchedulerConfig
	logger *zap.Logger
}

// NewRootCmd creates the root cobra command for the schedsim CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "schedsim",
		Short: "CPU scheduling simulator",
		Long:  "schedsim computes FCFS, SRTF, priority, round-robin and multilevel feedback queue schedules and their metrics.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./config.yaml when present)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format (console, json); overrides the config file")

	root.AddCommand(
		newServeCmd(opts),
		newRunCmd(opts),
		newGenerateCmd(opts),
	)

	return root
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	var err error
	if o.configPath != "" {
		o.config, err = config.LoadSchedulerConfig(o.configPath)
	} else {
		o.config, err = config.GetSchedulerConfig()
	}
	if err != nil {
		return err
	}

	level, format := o.config.LogLevel, o.config.LogFormat
	if o.logLevel != "" {
		level = o.logLevel
	}
	if o.debug {
		level = "debug"
	}
	if o.logFormat != "" {
		format = o.logFormat
	}

	logger, err := logging.NewLogger(level, format)
	if err != nil {
		return err
	}
	o.logger = logger
	return nil
}
