package company

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("company not found")

// Store manages companies in the database.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store backed by the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new company. The database assigns id and timestamps.
func (s *Store) Create(ctx context.Context, c *Company) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("creating company: %w", err)
	}
	return nil
}

// FindByID returns the company with the given id, or ErrNotFound.
func (s *Store) FindByID(ctx context.Context, id uint) (*Company, error) {
	var c Company
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding company: %w", err)
	}
	return &c, nil
}

// FindAll returns all companies ordered by id.
func (s *Store) FindAll(ctx context.Context) ([]*Company, error) {
	var companies []*Company
	if err := s.db.WithContext(ctx).Order("id").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return companies, nil
}

// Update applies the given column changes to the company and re-reads the
// row so storage-managed values (updated_at) are fresh. An empty change
// set is a no-op that returns the current row.
func (s *Store) Update(ctx context.Context, id uint, changes map[string]any) (*Company, error) {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		if err := s.db.WithContext(ctx).Model(c).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("updating company: %w", err)
		}
	}

	return s.FindByID(ctx, id)
}

// Delete removes the company with the given id and returns the deleted row.
func (s *Store) Delete(ctx context.Context, id uint) (*Company, error) {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(c).Error; err != nil {
		return nil, fmt.Errorf("deleting company: %w", err)
	}

	return c, nil
}
