package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corpdir/corpdir/internal/company"
	"github.com/corpdir/corpdir/internal/output"
	"github.com/corpdir/corpdir/internal/ui"
)

var (
	updateName    string
	updateEmail   string
	updateStreet  string
	updateCity    string
	updateCountry string
	updateDomain  string
	updateJSON    bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a company's details",
	Long: `Updates one or more fields of an existing company.

Use flags to specify which fields to update:
  --name      Change the company name
  --email     Change the contact email
  --street    Change the street address
  --city      Change the city
  --country   Change the country
  --domain    Change the website domain`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return cmdError(updateJSON, output.ErrValidation, "invalid company id: %s", args[0])
		}

		changes := map[string]any{}
		flagColumns := map[string]string{
			"name":    "name",
			"email":   "contact_email",
			"street":  "street_address",
			"city":    "city",
			"country": "country",
			"domain":  "domain",
		}
		flagValues := map[string]*string{
			"name":    &updateName,
			"email":   &updateEmail,
			"street":  &updateStreet,
			"city":    &updateCity,
			"country": &updateCountry,
			"domain":  &updateDomain,
		}
		for flag, column := range flagColumns {
			if cmd.Flags().Changed(flag) {
				changes[column] = *flagValues[flag]
			}
		}

		if len(changes) == 0 {
			return cmdError(updateJSON, output.ErrValidation,
				"no changes specified (use --name, --email, --street, --city, --country, or --domain)")
		}

		c, err := store.Update(cmd.Context(), id, changes)
		if err != nil {
			if errors.Is(err, company.ErrNotFound) {
				return cmdError(updateJSON, output.ErrNotFound, "company %d not found", id)
			}
			return cmdError(updateJSON, output.ErrDatabase, "failed to update company: %v", err)
		}

		if updateJSON {
			return output.Success(c, "Company updated")
		}

		var fields []string
		for column := range changes {
			fields = append(fields, column)
		}
		sort.Strings(fields)
		fmt.Println(ui.Success.Render("Updated ") + ui.ID.Render(fmt.Sprintf("#%d", c.ID)) +
			" " + ui.Muted.Render("("+strings.Join(fields, ", ")+")"))
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Company name")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "Contact email")
	updateCmd.Flags().StringVar(&updateStreet, "street", "", "Street address")
	updateCmd.Flags().StringVar(&updateCity, "city", "", "City")
	updateCmd.Flags().StringVar(&updateCountry, "country", "", "Country")
	updateCmd.Flags().StringVar(&updateDomain, "domain", "", "Website domain")
	updateCmd.Flags().BoolVar(&updateJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(updateCmd)
}
