package commands

import (
	"fmt"

	"github.com/eachlabs/parley/internal/config"
	"github.com/eachlabs/parley/internal/logging"
	"github.com/eachlabs/parley/internal/state"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "parley - multi-channel terminal chat log",
	Long: `parley shows a multi-channel chat log in the terminal.

Messages are tagged with colored channels. The visible log can be limited to
the newest N lines; older lines are archived and brought back when the limit
is raised or switched off.

  parley                 Open the chat window
  parley history         Print the chat history
  parley channels        List channels
  parley config          Manage configuration`,
	SilenceUsage: true,
	RunE:         runChat,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.parley/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output as JSON")

	addChatFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(channelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute(ver string) error {
	version = ver
	return rootCmd.Execute()
}

var version string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "parley %s\n", version)
	},
}

// Prune flag values shared by the commands that build a history.
var (
	pruneEnabled bool
	pruneLength  int
)

func addPruneFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&pruneEnabled, "prune", false, "limit the visible history length")
	cmd.Flags().IntVar(&pruneLength, "prune-length", 0, "number of visible lines when --prune is set")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if f := flags.Lookup("prune"); f != nil && f.Changed {
		cfg.History.PruneEnabled = pruneEnabled
	}
	if f := flags.Lookup("prune-length"); f != nil && f.Changed {
		if pruneLength < 0 {
			return nil, fmt.Errorf("--prune-length must not be negative, got %d", pruneLength)
		}
		cfg.History.PruneLength = pruneLength
	}
	return cfg, nil
}

// newLogger builds the file logger for cfg.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.LogFile(),
		Verbose: verbose,
	})
}

// setup loads configuration and builds the application state. The returned
// cleanup flushes the logger.
func setup(cmd *cobra.Command) (*state.App, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Config loaded",
		zap.String("path", configPathInUse()),
		zap.Int("channels", len(cfg.Channels)),
		zap.Int("seed", len(cfg.Seed)))

	app := state.New(cfg, logger)
	return app, func() { _ = logger.Sync() }, nil
}

func configPathInUse() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.ConfigPath()
}
