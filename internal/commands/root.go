package commands

import (
	"fmt"
	"prjdeck/internal/config"
	"prjdeck/internal/logging"
	"prjdeck/internal/models"
	"prjdeck/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath        string
	defaultConfigPath string
	globalConfig      *config.Config
	logger            = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "prjdeck",
	Short: "prjdeck - collect projects in a terminal form",
	Long: `prjdeck is a small terminal app for collecting projects.
Fill in a title, a description and the number of people, and the project is
added to the active and finished lists. Nothing is saved between runs.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		state := models.NewProjectState(logger)
		logger.Info("starting ui")
		return ui.Run(globalConfig, state, logger)
	},
}

// Execute runs the root command. defaultConfigPath is used unless
// --config is given.
func Execute(defaultPath string) error {
	defaultConfigPath = defaultPath
	return rootCmd.Execute()
}

// loadConfig loads the configuration and sets up logging for every command
func loadConfig(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	globalConfig = cfg

	l, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	logger = l

	logger.Debug("configuration loaded", zap.String("path", configPath))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file (default ~/.prjdeck/config.json)")

	// Add all commands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(configCmd)
}
