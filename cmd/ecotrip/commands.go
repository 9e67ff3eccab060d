package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/ecotrip/internal/config"
	"github.com/muurk/ecotrip/internal/geo"
	"github.com/muurk/ecotrip/internal/geocode"
	"github.com/muurk/ecotrip/internal/logging"
	"github.com/muurk/ecotrip/internal/trip"
	"github.com/muurk/ecotrip/internal/ui"
	"github.com/muurk/ecotrip/internal/urls"
	"github.com/muurk/ecotrip/internal/wizard/tui"
)

// Planner command flags
var (
	minimal      bool
	demoDates    bool
	outputFormat string
	forceInit    bool
)

// Output formats for the trip summary
const (
	formatDetailed = "detailed"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

func init() {
	planCmd.Flags().BoolVar(&minimal, "minimal", false, "Only open interests after an accommodation change; pick dates inline")
	planCmd.Flags().BoolVar(&demoDates, "demo-dates", false, "Prefill the demo date range (2024-12-28 to 2025-01-04)")
	planCmd.Flags().StringVar(&outputFormat, "format", formatDetailed, "Summary format after review (detailed, json, yaml)")

	// The root command runs the planner, so it takes the same flags
	rootCmd.Flags().AddFlagSet(planCmd.Flags())

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(destinationsCmd)
	rootCmd.AddCommand(interestsCmd)
	rootCmd.AddCommand(configCmd)
}

// planCmd launches the interactive planner
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Launch the interactive trip planner",
	Long: `Launch the interactive trip planner.

Fill in the form and choose "Plan my trip" to review it. When you quit from
the review screen the trip summary is printed in the chosen format.

On narrow terminals (under 80 columns) choosing an accommodation opens the
interests list, and picking a destination opens the calendar. Use --minimal
to keep only the accommodation rule.`,
	Example: `  # Launch the planner (also the default command)
  ecotrip plan

  # Start with the demo dates and print YAML afterwards
  ecotrip plan --demo-dates --format yaml`,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	if err := validateFormat(outputFormat); err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The planner owns the terminal, so logs go to a file
	if err := logging.Initialize("", plannerLogPath()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	resolver, locatorName, err := newResolver(settings)
	if err != nil {
		return err
	}

	app := tui.NewAppModel(tui.Config{
		Options:     plannerOptions(settings, minimal),
		DemoDates:   demoDates || settings.Planner.DemoDates,
		Resolver:    resolver,
		LocatorName: locatorName,
		Session:     uuid.NewString(),
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("planner error: %w", err)
	}

	m, ok := final.(tui.AppModel)
	if !ok || !m.Reviewed() {
		return nil
	}
	return printSummary(cmd.OutOrStdout(), m.Request(), outputFormat)
}

// plannerLogPath returns the log file in the config directory, or one in the
// temp directory when the config directory is unusable. It never returns an
// empty path, which would send logs to the terminal the planner draws on.
func plannerLogPath() string {
	logPath, err := config.GetLogPath()
	if err == nil {
		err = config.EnsureConfigDir()
	}
	if err != nil {
		return filepath.Join(os.TempDir(), "ecotrip.log")
	}
	return logPath
}

// plannerOptions maps settings and flags to form options
func plannerOptions(settings *config.Settings, minimal bool) trip.Options {
	if minimal {
		return trip.MinimalOptions()
	}
	return trip.Options{
		ChainedMobileModals: settings.Planner.ChainedMobileModals,
		CalendarModal:       settings.Planner.CalendarModal,
	}
}

func validateFormat(format string) error {
	switch format {
	case formatDetailed, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("invalid format %q (use detailed, json or yaml)", format)
}

// printSummary writes the reviewed trip in the requested format
func printSummary(w io.Writer, req trip.Request, format string) error {
	summary := req.Summary()

	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case formatYAML:
		data, err := yaml.Marshal(summary)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	details := ui.Details{}.
		Add("Destination", valueOr(summary.Destination)).
		Add("Dates", valueOr(dateRange(summary))).
		Add("Adults", strconv.Itoa(summary.Adults)).
		Add("Children", strconv.Itoa(summary.Children)).
		Add("Accommodation", valueOr(accommodationLabel(req.AccommodationType))).
		Add("Interests", valueOr(interestLabels(req.Interests))).
		Add("Starting location", valueOr(summary.StartingLocation))

	ui.NewPrinter(w).PrintSuccess("Trip planned", details)
	return nil
}

func dateRange(s trip.Summary) string {
	if s.StartDate == "" && s.EndDate == "" {
		return ""
	}
	r := s.StartDate + " → " + s.EndDate
	if s.Nights > 0 {
		r += fmt.Sprintf(" (%d nights)", s.Nights)
	}
	return r
}

func accommodationLabel(a trip.Accommodation) string {
	if a == trip.AccommodationUnset {
		return ""
	}
	return a.Label()
}

func interestLabels(tags []trip.InterestTag) string {
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, t.Label())
	}
	return strings.Join(labels, ", ")
}

func valueOr(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// newResolver builds the location resolver from settings and the
// environment
func newResolver(settings *config.Settings) (*geo.Resolver, string, error) {
	locator, err := geo.NewLocator(settings.Location)
	if err != nil {
		return nil, "", fmt.Errorf("invalid location settings: %w", err)
	}
	r := geo.NewResolver(locator, config.APIKey(), settings.Geocoding.BaseURL, settings.Geocoding.Timeout)
	return r, locator.Name(), nil
}

// locateCmd runs one location lookup
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Resolve the current location to an address",
	Long: `Read the current position from the configured location provider and
reverse-geocode it with OpenCage.

Providers are set in the config file:
  none    no location capability (default)
  static  fixed latitude/longitude
  gpsd    a gpsd daemon at gpsd_addr, or discovered over mDNS when empty`,
	Example: `  # Resolve once using the config file
  ecotrip locate

  # With the API key given inline
  OPENCAGE_API_KEY=... ecotrip locate`,
	RunE: runLocate,
}

func runLocate(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	resolver, locatorName, err := newResolver(settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   "Location Lookup",
		Command: "ecotrip locate",
		Params: ui.Details{}.
			Add("Provider", locatorName).
			Add("Geocoder", settings.Geocoding.BaseURL),
		StepNames:    []string{"Reading position", "Reverse geocoding"},
		Output:       cmd.OutOrStdout(),
		Troubleshoot: locateHints,
		FailureTitle: locateFailureTitle,
		ShowBar:      true,
	})

	_, err = runner.Run(ctx, "Location resolved", func(ctx context.Context, onStep ui.StepCallback) (ui.Details, error) {
		return locate(ctx, resolver, onStep)
	})
	return err
}

// locate runs the resolver and reports its two phases as steps
func locate(ctx context.Context, resolver *geo.Resolver, onStep ui.StepCallback) (ui.Details, error) {
	onStep(1, ui.StepRunning, "")

	result, err := resolver.Resolve(ctx)
	if err != nil {
		switch geo.KindOf(err) {
		case geo.KindUnsupportedPlatform, geo.KindPositionUnavailable:
			onStep(1, ui.StepFailed, geo.UserMessage(err))
			onStep(2, ui.StepSkipped, "")
		default:
			onStep(1, ui.StepComplete, result.Position.String())
			onStep(2, ui.StepFailed, geo.UserMessage(err))
		}
		logging.Debug("Locate failed", zap.String("kind", geo.KindOf(err).String()), zap.Error(err))
		return nil, err
	}

	onStep(1, ui.StepComplete, result.Position.String())

	details := ui.Details{}.
		Add("Latitude", geocode.FormatCoordinate(result.Position.Latitude)).
		Add("Longitude", geocode.FormatCoordinate(result.Position.Longitude))

	if !result.Found {
		onStep(2, ui.StepComplete, "no address found")
		return nil, &ui.Warning{Title: "No address found", Details: details}
	}

	onStep(2, ui.StepComplete, "")
	return details.Add("Address", result.Address), nil
}

// locateFailureTitle names a failed lookup, using the geocoder's short
// message when the request itself failed
func locateFailureTitle(err error) string {
	var gErr *geocode.Error
	if geo.IsKind(err, geo.KindGeocodingError) && errors.As(err, &gErr) {
		return geocode.GetShortErrorMessage(gErr)
	}
	return "Location lookup failed"
}

// locateHints returns troubleshooting tips for a failed lookup
func locateHints(err error) []string {
	switch geo.KindOf(err) {
	case geo.KindUnsupportedPlatform:
		return []string{
			"Set location.provider to static or gpsd in the config file",
			"Run 'ecotrip config init' to create a config file",
		}
	case geo.KindPositionUnavailable:
		return []string{
			"Check that gpsd is running and has a fix (try 'gpspipe -w')",
			"Set location.gpsd_addr if mDNS discovery does not find the daemon",
			"Increase location.gpsd_timeout for slow receivers",
			"gpsd setup: " + urls.GPSD,
		}
	case geo.KindMissingConfiguration:
		return []string{
			"Set " + config.APIKeyEnvVar + " in the environment or a .env file",
			"Get a free key at " + urls.OpenCageSignUp,
		}
	}
	return geocode.GetTroubleshootingHints(err)
}

// destinationsCmd lists the inspiration destinations
var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List suggested destinations",
	Run: func(cmd *cobra.Command, args []string) {
		rows := ui.Details{}
		for _, d := range trip.Destinations() {
			rows = rows.Add(d.Name, d.Description)
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintList(rows)
	},
}

// interestsCmd lists the interest tags
var interestsCmd = &cobra.Command{
	Use:   "interests",
	Short: "List interest tags",
	Run: func(cmd *cobra.Command, args []string) {
		rows := ui.Details{}
		for _, in := range trip.Interests() {
			rows = rows.Add(string(in.Tag), in.Label)
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintList(rows)
	},
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

// configPath returns --config when given, else the default config file path
func configPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigPath()
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Example: `  # Create the config file
  ecotrip config init

  # Replace an existing file with defaults
  ecotrip config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		if forceInit && ui.IsInteractive() {
			if _, statErr := os.Stat(path); statErr == nil {
				ok := ui.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), "Overwrite config",
					[]string{"Existing settings in " + path + " will be replaced with defaults"},
					"Continue?")
				if !ok {
					return nil
				}
			}
		}

		path, err = config.CreateDefaultConfig(path, forceInit)
		if err != nil {
			return err
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Config file written", ui.Details{}.Add("Path", path))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintFile("Effective configuration", string(data))
		if config.APIKey() == "" {
			p.PrintWarning("API key not set", ui.Details{}.
				Add("Variable", config.APIKeyEnvVar).
				Add("Sign up", urls.OpenCageSignUp))
			return nil
		}
		p.PrintList(ui.Details{}.Add(config.APIKeyEnvVar, "set"))
		return nil
	},
}
