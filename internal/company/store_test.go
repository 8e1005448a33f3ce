package company_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/corpdir/corpdir/internal/company"
)

func newTestStore(t *testing.T) *company.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "opening test database")
	require.NoError(t, db.AutoMigrate(&company.Company{}), "migrating test database")

	return company.NewStore(db)
}

func testCompany() *company.Company {
	return &company.Company{
		Name:          "Initech",
		ContactEmail:  "office@initech.example",
		StreetAddress: "4120 Freidrich Ln",
		City:          "Austin",
		Country:       "USA",
		Domain:        "initech.example",
	}
}

func TestStoreCreate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := testCompany()
	require.NoError(t, store.Create(ctx, c))

	assert.NotZero(t, c.ID, "database should assign an id")
	assert.False(t, c.CreatedAt.IsZero(), "CreatedAt should be set")
	assert.False(t, c.UpdatedAt.IsZero(), "UpdatedAt should be set")
}

func TestStoreFindByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := testCompany()
	require.NoError(t, store.Create(ctx, c))

	got, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "Initech", got.Name)
	assert.Equal(t, "office@initech.example", got.ContactEmail)

	_, err = store.FindByID(ctx, c.ID+1000)
	assert.ErrorIs(t, err, company.ErrNotFound)
}

func TestStoreFindAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	names := []string{"Initech", "Globex", "Hooli"}
	for _, name := range names {
		c := testCompany()
		c.Name = name
		require.NoError(t, store.Create(ctx, c))
	}

	all, err = store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Ordered by id, which follows insertion order.
	for i, name := range names {
		assert.Equal(t, name, all[i].Name)
	}
}

func TestStoreUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := testCompany()
	require.NoError(t, store.Create(ctx, c))

	t.Run("partial update", func(t *testing.T) {
		got, err := store.Update(ctx, c.ID, map[string]any{
			"name": "Initrode",
			"city": "Houston",
		})
		require.NoError(t, err)

		assert.Equal(t, "Initrode", got.Name)
		assert.Equal(t, "Houston", got.City)
		assert.Equal(t, "USA", got.Country, "untouched columns keep their values")
		assert.Equal(t, "initech.example", got.Domain)
	})

	t.Run("empty change set", func(t *testing.T) {
		got, err := store.Update(ctx, c.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, "Initrode", got.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Update(ctx, c.ID+1000, map[string]any{"name": "Nope"})
		assert.ErrorIs(t, err, company.ErrNotFound)
	})
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := testCompany()
	require.NoError(t, store.Create(ctx, c))

	deleted, err := store.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, deleted.ID)
	assert.Equal(t, "Initech", deleted.Name)

	_, err = store.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, company.ErrNotFound)

	_, err = store.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, company.ErrNotFound, "delete is by id and fails on a missing row")
}
