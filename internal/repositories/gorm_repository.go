package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GORMRepository is a GORM implementation of Repository.
type GORMRepository[T any] struct {
	db *gorm.DB
}

// NewGORMRepository creates a new instance of GORMRepository.
func NewGORMRepository[T any](db *gorm.DB) *GORMRepository[T] {
	return &GORMRepository[T]{
		db: db,
	}
}

// GetAll retrieves all records from the database.
func (r *GORMRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Order("id").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", err)
	}
	return entities, nil
}

// GetByID retrieves a single record by its ID. A missing record yields nil
// without an error.
func (r *GORMRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record by ID %d: %w", id, err)
	}
	return &entity, nil
}

// Create inserts a new record. GORM writes the generated primary key back
// into entity.
func (r *GORMRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// Update replaces the stored record sharing entity's primary key.
func (r *GORMRepository[T]) Update(ctx context.Context, entity *T) error {
	// Save writes every column, including zero values and nils.
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

// Delete removes the record identified by entity's primary key.
func (r *GORMRepository[T]) Delete(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}
