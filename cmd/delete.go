package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corpdir/corpdir/internal/company"
	"github.com/corpdir/corpdir/internal/output"
	"github.com/corpdir/corpdir/internal/ui"
)

var (
	forceDelete bool
	deleteJSON  bool
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a company",
	Long:    `Deletes a company after confirmation (use -f to skip confirmation).`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return cmdError(deleteJSON, output.ErrValidation, "invalid company id: %s", args[0])
		}

		c, err := store.FindByID(cmd.Context(), id)
		if err != nil {
			if errors.Is(err, company.ErrNotFound) {
				return cmdError(deleteJSON, output.ErrNotFound, "company %d not found", id)
			}
			return cmdError(deleteJSON, output.ErrDatabase, "failed to find company: %v", err)
		}

		// JSON implies force (no prompts for machines)
		if !forceDelete && !deleteJSON {
			fmt.Printf("Delete '%s' (#%d)? [y/N] ", c.Name, c.ID)

			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))

			if response != "y" && response != "yes" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		deleted, err := store.Delete(cmd.Context(), id)
		if err != nil {
			if errors.Is(err, company.ErrNotFound) {
				return cmdError(deleteJSON, output.ErrNotFound, "company %d not found", id)
			}
			return cmdError(deleteJSON, output.ErrDatabase, "failed to delete company: %v", err)
		}

		if deleteJSON {
			return output.Success(deleted, "Company deleted")
		}

		fmt.Println(ui.Success.Render("Deleted ") + ui.ID.Render(fmt.Sprintf("#%d", deleted.ID)) + " " + deleted.Name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&forceDelete, "force", "f", false, "Skip confirmation")
	deleteCmd.Flags().BoolVar(&deleteJSON, "json", false, "Output as JSON (implies --force)")
	rootCmd.AddCommand(deleteCmd)
}
