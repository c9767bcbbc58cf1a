package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"prjdeck/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage prjdeck configuration",
	Long:  "View and update prjdeck configuration settings",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get configuration value",
	Long:  "Display specific configuration value or all configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := globalConfig
		out := cmd.OutOrStdout()

		// If no argument is provided, show all config
		if len(args) == 0 {
			fmt.Fprintln(out, "Current configuration:")
			fmt.Fprintf(out, "People min: %v\n", cfg.PeopleMin)
			fmt.Fprintf(out, "People max: %v\n", cfg.PeopleMax)
			fmt.Fprintf(out, "Description min length: %d\n", cfg.DescriptionMinLength)
			fmt.Fprintf(out, "Log level: %s\n", cfg.LogLevel)
			if cfg.LogFile != "" {
				fmt.Fprintf(out, "Log file: %s\n", cfg.LogFile)
			}
			return nil
		}

		// Show specific config value
		switch args[0] {
		case "people-min":
			fmt.Fprintln(out, cfg.PeopleMin)
		case "people-max":
			fmt.Fprintln(out, cfg.PeopleMax)
		case "description-min-length":
			fmt.Fprintln(out, cfg.DescriptionMinLength)
		case "log-level":
			fmt.Fprintln(out, cfg.LogLevel)
		case "log-file":
			fmt.Fprintln(out, cfg.LogFile)
		default:
			return fmt.Errorf("unknown configuration key: %s", args[0])
		}

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	Long:  "Update configuration settings like the people bounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *globalConfig
		out := cmd.OutOrStdout()
		flags := cmd.Flags()

		// Update configuration based on provided flags
		configUpdated := false

		if flags.Changed("people-min") {
			cfg.PeopleMin, _ = flags.GetFloat64("people-min")
			configUpdated = true
		}
		if flags.Changed("people-max") {
			cfg.PeopleMax, _ = flags.GetFloat64("people-max")
			configUpdated = true
		}
		if flags.Changed("description-min-length") {
			cfg.DescriptionMinLength, _ = flags.GetInt("description-min-length")
			configUpdated = true
		}
		if flags.Changed("log-level") {
			cfg.LogLevel, _ = flags.GetString("log-level")
			configUpdated = true
		}
		if flags.Changed("log-file") {
			cfg.LogFile, _ = flags.GetString("log-file")
			configUpdated = true
		}

		if !configUpdated {
			fmt.Fprintln(out, "No changes were made to the configuration.")
			return nil
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		if err := cfg.Save(configPath); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		*globalConfig = cfg
		fmt.Fprintln(out, "Configuration updated successfully.")

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  "Create a new configuration file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// Check if config file exists
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintln(out, "Configuration file already exists.")
			fmt.Fprintln(out, "Use 'prjdeck config set' to modify existing configuration.")
			return nil
		}

		if err := config.Default().Save(configPath); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		fmt.Fprintln(out, "Configuration initialized successfully.")
		fmt.Fprintf(out, "Configuration file created at: %s\n", configPath)
		return nil
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show configuration file paths",
	Long:  "Display the configuration file and log file paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Config paths:")
		fmt.Fprintf(out, "- Config directory: %s\n", filepath.Dir(configPath))
		fmt.Fprintf(out, "- Config file: %s\n", configPath)
		if globalConfig.LogFile != "" {
			fmt.Fprintf(out, "- Log file: %s\n", globalConfig.LogFile)
		}

		// Check existence
		fmt.Fprintln(out, "\nExistence status:")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Fprintln(out, "- Config file: Does not exist")
		} else {
			fmt.Fprintln(out, "- Config file: Exists")
		}

		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathsCmd)

	configSetCmd.Flags().Float64("people-min", 0, "Smallest allowed number of people")
	configSetCmd.Flags().Float64("people-max", 5, "Largest allowed number of people")
	configSetCmd.Flags().Int("description-min-length", 0, "Minimum description length")
	configSetCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	configSetCmd.Flags().String("log-file", "", "Log file path, empty disables logging")
}
