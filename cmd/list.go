package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/corpdir/corpdir/internal/company"
	"github.com/corpdir/corpdir/internal/output"
	"github.com/corpdir/corpdir/internal/ui"
)

var (
	listJSON    bool
	listCountry []string
	listQuiet   bool
	listSort    string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all companies",
	Long:    `Lists all companies in the directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		companies, err := store.FindAll(cmd.Context())
		if err != nil {
			if listJSON {
				return output.Error(output.ErrDatabase, err.Error())
			}
			return fmt.Errorf("failed to list companies: %w", err)
		}

		companies = filterCompanies(companies, listCountry)
		sortCompanies(companies, listSort)

		if listJSON {
			return output.SuccessMultiple(companies)
		}

		// Quiet mode: just IDs
		if listQuiet {
			for _, c := range companies {
				fmt.Println(c.ID)
			}
			return nil
		}

		if len(companies) == 0 {
			fmt.Println(ui.Muted.Render("No companies found. Create one with: corpdir create"))
			return nil
		}

		// Calculate max ID width
		maxIDWidth := 2 // minimum for "ID" header
		for _, c := range companies {
			w := len(fmt.Sprintf("%d", c.ID))
			if w > maxIDWidth {
				maxIDWidth = w
			}
		}
		maxIDWidth += 2 // padding

		// Column styles with widths for alignment
		idStyle := lipgloss.NewStyle().Width(maxIDWidth)
		nameStyle := lipgloss.NewStyle().Width(24)
		cityStyle := lipgloss.NewStyle().Width(16)
		countryStyle := lipgloss.NewStyle().Width(16)
		domainStyle := lipgloss.NewStyle()

		headerCol := lipgloss.NewStyle().Foreground(ui.ColorMuted)

		header := lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render(headerCol.Render("ID")),
			nameStyle.Render(headerCol.Render("NAME")),
			cityStyle.Render(headerCol.Render("CITY")),
			countryStyle.Render(headerCol.Render("COUNTRY")),
			domainStyle.Render(headerCol.Render("DOMAIN")),
		)
		fmt.Println(header)
		fmt.Println(ui.Muted.Render(strings.Repeat("─", maxIDWidth+24+16+16+20)))

		for _, c := range companies {
			row := lipgloss.JoinHorizontal(lipgloss.Top,
				idStyle.Render(ui.ID.Render(fmt.Sprintf("%d", c.ID))),
				nameStyle.Render(truncate(c.Name, 22)),
				cityStyle.Render(truncate(c.City, 14)),
				countryStyle.Render(truncate(c.Country, 14)),
				domainStyle.Render(ui.Muted.Render(c.Domain)),
			)
			fmt.Println(row)
		}

		return nil
	},
}

func sortCompanies(companies []*company.Company, sortBy string) {
	switch sortBy {
	case "name":
		sort.Slice(companies, func(i, j int) bool {
			if companies[i].Name != companies[j].Name {
				return companies[i].Name < companies[j].Name
			}
			return companies[i].ID < companies[j].ID
		})
	case "created":
		sort.Slice(companies, func(i, j int) bool {
			if !companies[i].CreatedAt.Equal(companies[j].CreatedAt) {
				return companies[i].CreatedAt.After(companies[j].CreatedAt)
			}
			return companies[i].ID < companies[j].ID
		})
	case "updated":
		sort.Slice(companies, func(i, j int) bool {
			if !companies[i].UpdatedAt.Equal(companies[j].UpdatedAt) {
				return companies[i].UpdatedAt.After(companies[j].UpdatedAt)
			}
			return companies[i].ID < companies[j].ID
		})
	default:
		// Default: sort by ID
		sort.Slice(companies, func(i, j int) bool {
			return companies[i].ID < companies[j].ID
		})
	}
}

// filterCompanies filters by country. Values are matched
// case-insensitively and can be comma-separated or specified
// via repeated flags.
func filterCompanies(companies []*company.Company, countries []string) []*company.Company {
	if len(countries) == 0 {
		return companies
	}

	// Expand comma-separated values
	var expanded []string
	for _, c := range countries {
		for _, part := range strings.Split(c, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				expanded = append(expanded, part)
			}
		}
	}

	var filtered []*company.Company
	for _, c := range companies {
		matched := false
		for _, country := range expanded {
			if strings.EqualFold(c.Country, country) {
				matched = true
				break
			}
		}
		if matched {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringArrayVarP(&listCountry, "country", "c", nil, "Filter by country (can be repeated)")
	listCmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Only output IDs (one per line)")
	listCmd.Flags().StringVar(&listSort, "sort", "id", "Sort by: id, name, created, updated (default: id)")
	listCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.AddCommand(listCmd)
}
