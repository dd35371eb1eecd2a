package repositories

import (
	"context"

	"katalog/internal/models"
)

// Repository defines the data access contract for one entity type.
//
// GetByID reports a missing record as (nil, nil): absence is a normal
// outcome, not an error. Errors are reserved for store failures.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

// EntityPointer constrains PT to *T where *T carries an integer identity.
type EntityPointer[T any] interface {
	*T
	models.Entity
}

// ProductRepository is the repository the product handlers depend on.
type ProductRepository = Repository[models.Product]
