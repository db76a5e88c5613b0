// Package cli wires the cobra command tree for the ceremony scheduler.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ceremony-scheduler",
	Short: "Generate calendar invites for Scrum ceremonies aligned with monthly releases",
	Long: `ceremony-scheduler computes a year of Scrum ceremony events anchored to
monthly release dates (the third Saturday of each month), adjusts them around
holidays and weekends, and exports the schedule as an iCalendar file.

Per sprint it schedules Sprint Planning, Daily Standup, Sprint Review and
Sprint Retrospective.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the version string reported by the root command.
func SetVersion(version string) {
	rootCmd.Version = version
}

// Execute runs the command tree. Errors are printed with a failure marker;
// the caller decides the exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		PrintError(err.Error())
	}
	return err
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(templatesCmd)
}
