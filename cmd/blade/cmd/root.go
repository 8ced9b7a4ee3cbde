// Package cmd implements the blade command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-blade/internal/config"
	"github.com/hasbyte1/go-blade/internal/logger"
)

// app carries the state shared by every subcommand after PersistentPreRunE.
type app struct {
	configPath string
	overrides  config.Overrides

	cfg *config.Config
	log *logger.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{log: logger.NewNop()}

	root := &cobra.Command{
		Use:   "blade",
		Short: "Sequence utilities: statistics, set algebra, slicing and flattening",
		Long: `blade runs the go-blade sequence utilities over values given as
arguments or read from standard input.

Results are written to stdout; logs go to stderr.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (YAML)")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.overrides.LogFormat, "log-format", "", "log format: text, json")

	root.AddCommand(
		newStatsCmd(a),
		newSetCmd(a),
		newUniqueCmd(a),
		newDiceCmd(a),
		newFlattenCmd(a),
		newGroupCmd(a),
		newVersionCmd(),
	)
	return root, a
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyOverrides(a.overrides)
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	log.Debugw("configuration loaded", "path", a.configPath, "precise", cfg.Sum.Precise)
	return nil
}

// Execute runs the root command against os.Args. The log file, if any, is
// closed even when the command fails.
func Execute() error {
	root, a := newRoot()
	defer func() { _ = a.log.Close() }()
	return root.Execute()
}
