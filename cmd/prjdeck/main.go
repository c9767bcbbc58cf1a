package main

import (
	"fmt"
	"os"
	"path/filepath"
	"prjdeck/internal/commands"
	"prjdeck/internal/config"
)

func main() {
	// Create config directory if it doesn't exist
	configDir, err := config.GetConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		os.Exit(1)
	}

	// Execute root command
	if err := commands.Execute(filepath.Join(configDir, "config.json")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
