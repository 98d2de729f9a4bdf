package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pcpsearch/internal/config"
	"github.com/katalvlaran/pcpsearch/internal/logging"
)

// errRejected is returned when at least one instance failed validation, so
// the process exits non-zero after printing the result.
var errRejected = errors.New("instance rejected")

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pcpsolve",
		Short: "Bounded search for Post Correspondence Problem solutions",
		Long: "pcpsolve runs a depth- and divergence-bounded backtracking search over PCP\n" +
			"instances. A negative answer only means nothing was found within bounds.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	root.Version = version

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	f.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	f.StringVar(&a.logFormat, "log-format", "", "Log format: text or json (overrides config)")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newExamplesCmd(a))

	return root
}

// setup loads the config, applies global flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	logging.Init(level, cfg.Log.Format, cmd.ErrOrStderr())
	a.cfg = cfg
	a.log = logging.New("pcpsolve")
	a.log.Debug("config loaded", slog.String("path", a.configPath), slog.String("output", cfg.Output.Format))

	return nil
}

// searchFlags are the bound overrides shared by solve, batch and examples.
type searchFlags struct {
	format   string
	maxDepth int
	maxDiff  int
	timeout  string
}

func (s *searchFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&s.format, "format", "", "Output format: text or json (overrides config)")
	f.IntVar(&s.maxDepth, "max-depth", 0, "Maximum sequence length (overrides config)")
	f.IntVar(&s.maxDiff, "max-diff", 0, "Maximum top/bottom length difference (overrides config)")
	f.StringVar(&s.timeout, "timeout", "", "Search time budget, e.g. 3s; 0 disables it (overrides config)")
}

// apply folds explicitly set flags into cfg.
func (s *searchFlags) apply(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	f := cmd.Flags()
	if f.Changed("format") {
		cfg.Output.Format = s.format
	}
	if f.Changed("max-depth") {
		cfg.Search.MaxDepth = s.maxDepth
	}
	if f.Changed("max-diff") {
		cfg.Search.MaxDiff = s.maxDiff
	}
	if f.Changed("timeout") {
		cfg.Search.Timeout = s.timeout
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("flags: %w", err)
	}

	return cfg, nil
}
