package cmd

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corpdir/corpdir/internal/company"
	"github.com/corpdir/corpdir/internal/config"
	"github.com/corpdir/corpdir/internal/storage"
)

func setupQueryTestStore(t *testing.T) *company.Store {
	t.Helper()

	cfg := config.Default()
	cfg.Database.DSN = filepath.Join(t.TempDir(), "test.db")

	db, err := storage.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	testStore := company.NewStore(db)

	// Save and restore the global store
	oldStore := store
	store = testStore
	t.Cleanup(func() { store = oldStore })

	return testStore
}

func createQueryTestCompany(t *testing.T, s *company.Store, name, country string) *company.Company {
	t.Helper()
	c := &company.Company{
		Name:          name,
		ContactEmail:  "info@" + strings.ToLower(name) + ".example",
		StreetAddress: "1 Main St",
		City:          "Springfield",
		Country:       country,
		Domain:        strings.ToLower(name) + ".example",
	}
	if err := s.Create(context.Background(), c); err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}
	return c
}

func TestExecuteQuery(t *testing.T) {
	testStore := setupQueryTestStore(t)

	createQueryTestCompany(t, testStore, "Initech", "USA")
	createQueryTestCompany(t, testStore, "Globex", "Canada")

	t.Run("query all companies", func(t *testing.T) {
		result, err := executeQuery(`{ companies { id name country } }`, nil, "")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}

		var data struct {
			Companies []struct {
				ID      string `json:"id"`
				Name    string `json:"name"`
				Country string `json:"country"`
			} `json:"companies"`
		}
		if err := json.Unmarshal(result, &data); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if len(data.Companies) != 2 {
			t.Fatalf("got %d companies, want 2", len(data.Companies))
		}
		if data.Companies[0].Name != "Initech" {
			t.Errorf("first company = %q, want %q", data.Companies[0].Name, "Initech")
		}
	})

	t.Run("query single company with variables", func(t *testing.T) {
		result, err := executeQuery(
			`query ($id: ID!) { company(id: $id) { name city } }`,
			map[string]any{"id": "1"}, "")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}

		var data struct {
			Company struct {
				Name string `json:"name"`
				City string `json:"city"`
			} `json:"company"`
		}
		if err := json.Unmarshal(result, &data); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if data.Company.Name != "Initech" {
			t.Errorf("company name = %q, want %q", data.Company.Name, "Initech")
		}
	})

	t.Run("mutation creates a company", func(t *testing.T) {
		mutation := `mutation {
			createCompany(name: "Soylent", contactEmail: "hello@soylent.example",
				streetAddress: "99 Industrial Way", city: "New York",
				country: "USA", domain: "soylent.example") { id name }
		}`
		result, err := executeQuery(mutation, nil, "")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}

		var data struct {
			CreateCompany struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"createCompany"`
		}
		if err := json.Unmarshal(result, &data); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if data.CreateCompany.Name != "Soylent" {
			t.Errorf("created name = %q, want %q", data.CreateCompany.Name, "Soylent")
		}

		all, err := testStore.FindAll(context.Background())
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		if len(all) != 3 {
			t.Errorf("got %d companies after mutation, want 3", len(all))
		}
	})

	t.Run("malformed query returns error", func(t *testing.T) {
		_, err := executeQuery(`{ companies { nope } }`, nil, "")
		if err == nil {
			t.Fatal("executeQuery() expected error for unknown field")
		}
		if !strings.Contains(err.Error(), "graphql") {
			t.Errorf("error = %q, want graphql error", err.Error())
		}
	})
}
