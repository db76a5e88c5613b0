package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ceremony-scheduler/internal/templates"
	"github.com/example/ceremony-scheduler/internal/templates/sqlitestore"
)

var templatesDBPath string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage ceremony templates",
}

var templatesSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a template database seeded with the built-in ceremony templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		store, err := sqlitestore.Open(ctx, templatesDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, tmpl := range templates.Defaults() {
			if err := store.Save(ctx, tmpl, ""); err != nil {
				return fmt.Errorf("seed template %s: %w", tmpl.CeremonyType, err)
			}
		}
		PrintSuccess(fmt.Sprintf("Seeded %d templates into %s", len(templates.Defaults()), templatesDBPath))
		return nil
	},
}

func init() {
	templatesSeedCmd.Flags().StringVar(&templatesDBPath, "db", "templates.db", "path to the SQLite template database")
	templatesCmd.AddCommand(templatesSeedCmd)
}
