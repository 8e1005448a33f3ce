package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corpdir/corpdir/internal/company"
	"github.com/corpdir/corpdir/internal/output"
	"github.com/corpdir/corpdir/internal/ui"
)

var (
	createName    string
	createEmail   string
	createStreet  string
	createCity    string
	createCountry string
	createDomain  string
	createJSON    bool
)

var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c", "new"},
	Short:   "Create a new company",
	Long: `Creates a new company record. All six attributes are required:
name, email, street, city, country and domain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The schema requires every attribute; collect what's missing
		// so the user gets one complete complaint.
		var missing []string
		for flag, value := range map[string]string{
			"name":    createName,
			"email":   createEmail,
			"street":  createStreet,
			"city":    createCity,
			"country": createCountry,
			"domain":  createDomain,
		} {
			if value == "" {
				missing = append(missing, "--"+flag)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return cmdError(createJSON, output.ErrValidation, "missing required flags: %s", strings.Join(missing, ", "))
		}

		c := &company.Company{
			Name:          createName,
			ContactEmail:  createEmail,
			StreetAddress: createStreet,
			City:          createCity,
			Country:       createCountry,
			Domain:        createDomain,
		}
		if err := store.Create(cmd.Context(), c); err != nil {
			return cmdError(createJSON, output.ErrDatabase, "failed to create company: %v", err)
		}

		if createJSON {
			return output.Success(c, "Company created")
		}

		fmt.Println(ui.Success.Render("Created ") + ui.ID.Render(fmt.Sprintf("#%d", c.ID)) + " " + ui.Title.Render(c.Name))
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "Company name")
	createCmd.Flags().StringVarP(&createEmail, "email", "e", "", "Contact email")
	createCmd.Flags().StringVar(&createStreet, "street", "", "Street address")
	createCmd.Flags().StringVar(&createCity, "city", "", "City")
	createCmd.Flags().StringVar(&createCountry, "country", "", "Country")
	createCmd.Flags().StringVarP(&createDomain, "domain", "d", "", "Web domain")
	createCmd.Flags().BoolVar(&createJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(createCmd)
}
