package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corpdir/corpdir/internal/output"
	"github.com/corpdir/corpdir/internal/storage"
	"github.com/corpdir/corpdir/internal/ui"
)

var migrateJSON bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Applies the database schema for the configured database.

Migrations are idempotent and also run automatically before every
command; use this to migrate a database as an explicit deploy step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := storage.Migrate(db); err != nil {
			return cmdError(migrateJSON, output.ErrDatabase, "migration failed: %v", err)
		}

		if migrateJSON {
			return output.SuccessMessage("Database schema is up to date")
		}

		fmt.Println(ui.Success.Render("Migrated ") + ui.Muted.Render(cfg.Database.Driver+" database"))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(migrateCmd)
}
