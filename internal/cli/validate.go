package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ceremony-scheduler/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config-file>",
	Short: "Validate a YAML configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		settings, issues, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		if len(issues) > 0 {
			printIssues(issues)
			return fmt.Errorf("%w: %s", errInvalidConfiguration, path)
		}
		PrintSuccess(fmt.Sprintf("%s is valid", path))
		fmt.Printf("  sprint duration: %d weeks\n", settings.Sprint.DurationWeeks)
		fmt.Printf("  holidays: %d\n", len(settings.Holidays))
		fmt.Printf("  external events: %d\n", len(settings.Events))
		return nil
	},
}
