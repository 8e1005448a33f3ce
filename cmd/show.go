package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corpdir/corpdir/internal/company"
	"github.com/corpdir/corpdir/internal/output"
	"github.com/corpdir/corpdir/internal/ui"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a company's details",
	Long:  `Displays the full record of a company, including timestamps.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return cmdError(showJSON, output.ErrValidation, "invalid company id: %s", args[0])
		}

		c, err := store.FindByID(cmd.Context(), id)
		if err != nil {
			if errors.Is(err, company.ErrNotFound) {
				return cmdError(showJSON, output.ErrNotFound, "company %d not found", id)
			}
			return cmdError(showJSON, output.ErrDatabase, "failed to find company: %v", err)
		}

		if showJSON {
			return output.Success(c, "")
		}

		var b strings.Builder
		b.WriteString(ui.ID.Render(fmt.Sprintf("#%d", c.ID)))
		b.WriteString(" ")
		b.WriteString(ui.Title.Render(c.Name))
		b.WriteString("\n")
		b.WriteString(ui.Muted.Render(strings.Repeat("─", 50)))
		b.WriteString("\n")
		b.WriteString(ui.Label.Render("Email") + c.ContactEmail + "\n")
		b.WriteString(ui.Label.Render("Street") + c.StreetAddress + "\n")
		b.WriteString(ui.Label.Render("City") + c.City + "\n")
		b.WriteString(ui.Label.Render("Country") + c.Country + "\n")
		b.WriteString(ui.Label.Render("Domain") + c.Domain + "\n")
		b.WriteString(ui.Muted.Render(strings.Repeat("─", 50)))
		b.WriteString("\n")
		b.WriteString(ui.Label.Render("Created") + ui.Muted.Render(c.CreatedAt.Format("2006-01-02 15:04:05")) + "\n")
		b.WriteString(ui.Label.Render("Updated") + ui.Muted.Render(c.UpdatedAt.Format("2006-01-02 15:04:05")))

		fmt.Println(b.String())
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}
