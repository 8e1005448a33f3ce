package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/corpdir/corpdir/internal/company"
	"github.com/corpdir/corpdir/internal/config"
	"github.com/corpdir/corpdir/internal/output"
	"github.com/corpdir/corpdir/internal/storage"
	"github.com/corpdir/corpdir/internal/ui"
)

var (
	cfg   *config.Config
	db    *gorm.DB
	store *company.Store

	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "corpdir",
	Short: "A company directory with a GraphQL API",
	Long: `Corpdir keeps a directory of companies in a relational database and
exposes it through a GraphQL API. Every record carries a name, contact
email, street address, city, country and web domain.

The same operations are available as CLI commands, as ad-hoc GraphQL
queries (corpdir graphql) and over HTTP (corpdir serve).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		db, err = storage.Open(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		if err := storage.Migrate(db); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}

		store = company.NewStore(db)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default "+config.ConfigFile+")")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, output.ErrSilent) {
			fmt.Fprintln(os.Stderr, ui.Danger.Render("Error: ")+err.Error())
		}
		os.Exit(1)
	}
}
