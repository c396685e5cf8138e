package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"studio-listing-backend/internal/model"
)

// Store defines the interface for all studio database operations.
type Store interface {
	Insert(ctx context.Context, d Draft) (model.Studio, error)
	GetByID(ctx context.Context, id int64) (model.Studio, error)
	ListAll(ctx context.Context) ([]model.Studio, error)
	ListAvailable(ctx context.Context) ([]model.Studio, error)
	ListByLocation(ctx context.Context, substr string) ([]model.Studio, error)
	ListByMaxPrice(ctx context.Context, ceiling float64) ([]model.Studio, error)
	ListByKeyword(ctx context.Context, substr string) ([]model.Studio, error)
	Update(ctx context.Context, id int64, d Draft) (model.Studio, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Insert persists a new studio, letting the database assign its id.
// Both timestamps are stamped from a single clock reading.
func (s *gormStore) Insert(ctx context.Context, d Draft) (model.Studio, error) {
	now := s.stamp()
	studio := model.Studio{CreatedAt: now, UpdatedAt: now}
	apply(&studio, d)

	if err := s.db.WithContext(ctx).Create(&studio).Error; err != nil {
		return model.Studio{}, fmt.Errorf("failed to insert studio %q: %w", d.Name, err)
	}
	return studio, nil
}

// GetByID returns ErrNotFound when no row matches.
func (s *gormStore) GetByID(ctx context.Context, id int64) (model.Studio, error) {
	var studio model.Studio
	err := s.db.WithContext(ctx).First(&studio, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Studio{}, ErrNotFound
	}
	if err != nil {
		return model.Studio{}, fmt.Errorf("failed to fetch studio %d: %w", id, err)
	}
	return studio, nil
}

func (s *gormStore) ListAll(ctx context.Context) ([]model.Studio, error) {
	return find(s.db.WithContext(ctx))
}

func (s *gormStore) ListAvailable(ctx context.Context) ([]model.Studio, error) {
	return find(s.db.WithContext(ctx).Where("is_available = ?", true))
}

// ListByLocation matches substr anywhere in location, ignoring case.
func (s *gormStore) ListByLocation(ctx context.Context, substr string) ([]model.Studio, error) {
	return find(s.db.WithContext(ctx).
		Where(`LOWER(location) LIKE LOWER(?) ESCAPE '\'`, containsPattern(substr)))
}

// ListByMaxPrice only returns available studios.
func (s *gormStore) ListByMaxPrice(ctx context.Context, ceiling float64) ([]model.Studio, error) {
	return find(s.db.WithContext(ctx).
		Where("price_per_hour <= ? AND is_available = ?", ceiling, true))
}

// ListByKeyword matches substr in either name or description, ignoring case.
func (s *gormStore) ListByKeyword(ctx context.Context, substr string) ([]model.Studio, error) {
	pattern := containsPattern(substr)
	return find(s.db.WithContext(ctx).
		Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\'`, pattern, pattern))
}

// Update replaces every mutable column of an existing studio. id and
// created_at are never written.
func (s *gormStore) Update(ctx context.Context, id int64, d Draft) (model.Studio, error) {
	var studio model.Studio
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&studio, id).Error; err != nil {
			return err
		}

		updatedAt := s.stamp()
		if prev := studio.UpdatedAt.Truncate(time.Microsecond); updatedAt.Before(prev) {
			updatedAt = prev
		}
		apply(&studio, d)
		studio.UpdatedAt = updatedAt

		res := tx.Model(&model.Studio{ID: id}).Updates(map[string]any{
			"name":           studio.Name,
			"description":    studio.Description,
			"location":       studio.Location,
			"price_per_hour": studio.PricePerHour,
			"image_url":      studio.ImageURL,
			"contact_email":  studio.ContactEmail,
			"contact_phone":  studio.ContactPhone,
			"is_available":   studio.IsAvailable,
			"updated_at":     studio.UpdatedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Studio{}, ErrNotFound
	}
	if err != nil {
		return model.Studio{}, fmt.Errorf("failed to update studio %d: %w", id, err)
	}
	return studio, nil
}

// Delete hard-deletes the studio and reports whether a row was removed.
func (s *gormStore) Delete(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&model.Studio{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete studio %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *gormStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Studio{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count studios: %w", err)
	}
	return n, nil
}

// --- Helpers ---

// stamp reads the clock at the microsecond precision postgres timestamps
// keep, so returned rows equal what a later read yields.
func (s *gormStore) stamp() time.Time {
	return s.now().Truncate(time.Microsecond)
}

func find(q *gorm.DB) ([]model.Studio, error) {
	studios := make([]model.Studio, 0)
	if err := q.Order("id").Find(&studios).Error; err != nil {
		return nil, fmt.Errorf("failed to list studios: %w", err)
	}
	return studios, nil
}

func apply(studio *model.Studio, d Draft) {
	studio.Name = d.Name
	studio.Description = d.Description
	studio.Location = d.Location
	studio.PricePerHour = d.PricePerHour
	studio.ImageURL = d.ImageURL
	studio.ContactEmail = d.ContactEmail
	studio.ContactPhone = d.ContactPhone
	studio.IsAvailable = d.IsAvailable
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern that matches substr literally at
// any position. Case folding is left to LOWER() in the query so both sides
// fold with the same rules.
func containsPattern(substr string) string {
	return "%" + likeEscaper.Replace(substr) + "%"
}
