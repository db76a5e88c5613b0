package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/ceremony-scheduler/internal/config"
	"github.com/example/ceremony-scheduler/internal/dates"
	"github.com/example/ceremony-scheduler/internal/export"
	"github.com/example/ceremony-scheduler/internal/logging"
	"github.com/example/ceremony-scheduler/internal/scheduler"
	"github.com/example/ceremony-scheduler/internal/templates"
	"github.com/example/ceremony-scheduler/internal/templates/sqlitestore"
)

var (
	generateYear        int
	generateOutput      string
	generateConfig      string
	generateTeam        string
	generateTemplatesDB string
	generateConflicts   bool
	generateVerbose     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a year of ceremony invites and export them as iCalendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		logger := logging.New(os.Stderr, generateVerbose)
		ctx = logging.ContextWithLogger(ctx, logger)

		year := generateYear
		if year == 0 {
			year = time.Now().Year()
		}

		settings := config.DefaultSettings()
		if generateConfig != "" {
			loaded, issues, err := config.LoadFile(generateConfig)
			if err != nil {
				return err
			}
			if len(issues) > 0 {
				printIssues(issues)
				return fmt.Errorf("%w: %s", errInvalidConfiguration, generateConfig)
			}
			settings = loaded
		}
		if generateTeam != "" {
			settings.Team = generateTeam
		}

		store, closeStore, err := openTemplateStore(ctx, generateTemplatesDB)
		if err != nil {
			return err
		}
		defer closeStore()

		engine := scheduler.NewEngineWithLogger(store, nil, logger)

		fmt.Printf("Generating ceremonies for %d...\n", year)
		releases := dates.ReleaseDatesForYear(year)
		PrintSuccess(fmt.Sprintf("Calculated %d release dates", len(releases)))

		invites, err := engine.GenerateForReleases(ctx, releases, settings.Sprint, settings.Holidays, settings.Team)
		if err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("Generated %d ceremonies", len(invites)))

		if err := export.WriteFile(invites, generateOutput); err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("Exported to %s", generateOutput))

		fmt.Println()
		fmt.Println(export.Summary(invites))

		if generateConflicts {
			reportConflicts(invites, settings.Events)
		}

		PrintSuccess(fmt.Sprintf("Done! Import %s into your calendar application.", generateOutput))
		return nil
	},
}

func openTemplateStore(ctx context.Context, dbPath string) (templates.Store, func(), error) {
	if dbPath == "" {
		return templates.NewMemoryStore(), func() {}, nil
	}
	store, err := sqlitestore.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

func reportConflicts(invites []scheduler.Invite, events []scheduler.ExternalEvent) {
	conflicts := scheduler.DetectConflicts(invites, events)
	if len(conflicts) == 0 {
		PrintSuccess("No conflicts detected")
		return
	}

	PrintSection("Conflicts Detected")
	for _, conflict := range conflicts {
		PrintWarning(fmt.Sprintf("[%s] %s on %s: %s",
			conflict.Type, conflict.Invite.Title, conflict.Date.Format("2006-01-02 15:04"), conflict.Description))
	}

	alternatives := scheduler.ProposeAlternativeTimes(conflicts, events)
	if len(alternatives) == 0 {
		return
	}
	PrintSection("Proposed Alternatives")
	for _, conflict := range conflicts {
		proposed, ok := alternatives[conflict.Invite.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %s -> %s\n", conflict.Invite.Title, proposed.Format("2006-01-02 15:04"))
	}
}

func printIssues(issues []*config.Issue) {
	for _, issue := range issues {
		PrintError(issue.Error())
		for _, suggestion := range issue.Suggestions {
			fmt.Fprintf(os.Stderr, "  hint: %s\n", suggestion)
		}
	}
}

var errInvalidConfiguration = errors.New("invalid configuration")

func init() {
	generateCmd.Flags().IntVarP(&generateYear, "year", "y", 0, "year to generate ceremonies for (default: current year)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "ceremonies.ics", "output file path")
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "YAML configuration file (sprint settings, holidays, external events)")
	generateCmd.Flags().StringVar(&generateTeam, "team", "", "team identifier for team-specific templates")
	generateCmd.Flags().StringVar(&generateTemplatesDB, "templates", "", "path to a SQLite template database")
	generateCmd.Flags().BoolVar(&generateConflicts, "check-conflicts", false, "report conflicts with configured external events")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "enable debug logging")
}
