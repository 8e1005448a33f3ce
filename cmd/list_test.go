package cmd

import (
	"testing"
	"time"

	"github.com/corpdir/corpdir/internal/company"
)

func TestFilterCompanies(t *testing.T) {
	companies := []*company.Company{
		{ID: 1, Name: "Initech", Country: "USA"},
		{ID: 2, Name: "Globex", Country: "USA"},
		{ID: 3, Name: "Soylent", Country: "Canada"},
		{ID: 4, Name: "Umbrella", Country: "Germany"},
	}

	tests := []struct {
		name      string
		countries []string
		wantIDs   []uint
	}{
		{
			name:      "no filter",
			countries: nil,
			wantIDs:   []uint{1, 2, 3, 4},
		},
		{
			name:      "empty filter",
			countries: []string{},
			wantIDs:   []uint{1, 2, 3, 4},
		},
		{
			name:      "single country",
			countries: []string{"USA"},
			wantIDs:   []uint{1, 2},
		},
		{
			name:      "case insensitive",
			countries: []string{"canada"},
			wantIDs:   []uint{3},
		},
		{
			name:      "multiple flags",
			countries: []string{"Canada", "Germany"},
			wantIDs:   []uint{3, 4},
		},
		{
			name:      "comma separated",
			countries: []string{"Canada,Germany"},
			wantIDs:   []uint{3, 4},
		},
		{
			name:      "non-existent country",
			countries: []string{"Atlantis"},
			wantIDs:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterCompanies(companies, tt.countries)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("filterCompanies() count = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, c := range got {
				if c.ID != tt.wantIDs[i] {
					t.Errorf("filterCompanies()[%d].ID = %d, want %d", i, c.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestSortCompanies(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	newCompanies := func() []*company.Company {
		return []*company.Company{
			{ID: 2, Name: "Globex", CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(1 * time.Hour)},
			{ID: 3, Name: "Acme", CreatedAt: base.Add(1 * time.Hour), UpdatedAt: base.Add(3 * time.Hour)},
			{ID: 1, Name: "Initech", CreatedAt: base.Add(3 * time.Hour), UpdatedAt: base.Add(2 * time.Hour)},
		}
	}

	tests := []struct {
		name    string
		sortBy  string
		wantIDs []uint
	}{
		{name: "default is id", sortBy: "", wantIDs: []uint{1, 2, 3}},
		{name: "id", sortBy: "id", wantIDs: []uint{1, 2, 3}},
		{name: "name", sortBy: "name", wantIDs: []uint{3, 2, 1}},
		{name: "created newest first", sortBy: "created", wantIDs: []uint{1, 2, 3}},
		{name: "updated newest first", sortBy: "updated", wantIDs: []uint{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			companies := newCompanies()
			sortCompanies(companies, tt.sortBy)

			for i, want := range tt.wantIDs {
				if companies[i].ID != want {
					t.Errorf("sortCompanies(%q)[%d].ID = %d, want %d", tt.sortBy, i, companies[i].ID, want)
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a long company name", 10, "this is..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
