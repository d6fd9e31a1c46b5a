package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tkohara/gomi-navi/internal/gomi/dateutil"
	"github.com/tkohara/gomi-navi/internal/ics"
	"github.com/tkohara/gomi-navi/internal/logger"
	"github.com/tkohara/gomi-navi/internal/schedule"
	"github.com/tkohara/gomi-navi/internal/search"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagFormat  string
	flagConfig  string
	flagVerbose bool
	flagICSOut  string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gomi-navi",
		Short: "Nishinomiya garbage-collection navigator",
		Long: `A CLI tool for the Nishinomiya city garbage-collection calendar.
Shows what to take out today and this week, searches the city's sorting
guide by household-item keyword, and exports the schedule as iCalendar.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a JSON guide-crawl config (keywords, mappings)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show today's and this week's pickups",
		RunE:  runSchedule,
	}

	guideCmd := &cobra.Command{
		Use:   "guide",
		Short: "List the city's sorting-guide categories",
		RunE:  runGuide,
	}

	searchCmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Find how to sort an item and when it is next collected",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}

	icsCmd := &cobra.Command{
		Use:   "ics",
		Short: "Export the upcoming schedule as an iCalendar file",
		RunE:  runICS,
	}
	icsCmd.Flags().StringVar(&flagICSOut, "out", "", "Write to file instead of stdout")

	root.AddCommand(scheduleCmd, guideCmd, searchCmd, icsCmd)
	return root
}

func parseFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	entries := a.upcoming(cmd.Context())
	now := a.now()

	result := &ScheduleResult{
		CheckedAt:   now.UTC(),
		OfficialURL: dateutil.URLForMonth(now.Year(), int(now.Month())),
		Available:   len(entries) > 0,
		View:        schedule.BuildWeekView(entries, now),
	}
	return WriteSchedule(os.Stdout, result, format)
}

func runGuide(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	result := &GuideResult{Records: a.guides(cmd.Context())}
	return WriteGuide(os.Stdout, result, format)
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	entries, records := a.refresh(cmd.Context())

	result := &SearchResult{
		Query:   query,
		Matches: search.Search(query, records, entries, a.now()),
	}
	return WriteSearch(os.Stdout, result, format)
}

func runICS(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	entries := a.upcoming(cmd.Context())

	out := os.Stdout
	if flagICSOut != "" {
		f, err := os.Create(flagICSOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return ics.Generate(out, entries)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
