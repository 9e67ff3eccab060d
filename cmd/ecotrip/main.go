// Ecotrip is a terminal planner for sustainable trips.
//
// It collects a destination, dates, travelers, interests, accommodation and
// a starting location in an interactive form, and can fill the starting
// location from the machine's position (static coordinates or a gpsd
// daemon) through the OpenCage reverse-geocoding API.
//
// Usage:
//
//	ecotrip [command] [flags]
//
// Running without arguments launches the interactive planner.
// See 'ecotrip --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/ecotrip/internal/config"
	"github.com/muurk/ecotrip/internal/logging"
	"github.com/muurk/ecotrip/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var configFile string

var rootCmd = &cobra.Command{
	Use:   "ecotrip",
	Short: "Eco Trip Planner",
	Long: `Plan a sustainable trip from your terminal.

The planner asks for a destination, travel dates, travelers, interests,
accommodation and a starting location. The starting location can be filled
from your current position when a location provider is configured and
OPENCAGE_API_KEY is set (in the environment or a .env file).

If no command is specified, the interactive planner launches automatically.`,
	Version: version.Version,
	Example: `  # Launch the planner
  ecotrip

  # Planner without chained overlays, printing the trip as JSON
  ecotrip plan --minimal --format json

  # Resolve the current location once
  ecotrip locate`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env never overrides variables already set
		if err := config.LoadEnv(); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the planner when no subcommand provided
		return runPlan(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ecotrip/config.yaml in the user config dir)")

	rootCmd.AddCommand(versionCmd)
}

// loadSettings reads --config when given, else the default config file
func loadSettings() (*config.Settings, error) {
	if configFile != "" {
		return config.LoadFrom(configFile)
	}
	return config.Load()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ecotrip %s (commit: %s)\n", version.Version, version.Commit)
	},
}
