package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corpdir/corpdir/internal/config"
	"github.com/corpdir/corpdir/internal/output"
	"github.com/corpdir/corpdir/internal/ui"
)

var (
	initJSON  bool
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Creates a ` + config.ConfigFile + ` file in the current directory with the
default settings (sqlite database, port 8680). Edit it to switch to
postgres or change the port.`,
	// Only writes the config file; skip the database setup the other
	// commands need.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.ConfigFile
		}

		if !initForce {
			if _, err := os.Stat(path); err == nil {
				return cmdError(initJSON, output.ErrValidation, "%s already exists (use -f to overwrite)", path)
			}
		}

		if err := config.Default().Save(path); err != nil {
			return cmdError(initJSON, output.ErrFile, "failed to write config: %v", err)
		}

		if initJSON {
			return output.SuccessMessage("Wrote " + path)
		}

		fmt.Println(ui.Success.Render("Wrote ") + path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initJSON, "json", false, "Output as JSON")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
