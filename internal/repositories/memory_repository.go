package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrDuplicateID is returned when Create is given an ID that is already stored.
var ErrDuplicateID = errors.New("duplicate id")

// MemoryRepository is an in-memory implementation of Repository.
type MemoryRepository[T any, PT EntityPointer[T]] struct {
	entities map[int]T
	lastID   int
	mu       sync.RWMutex
}

// NewMemoryRepository creates a new instance of MemoryRepository.
func NewMemoryRepository[T any, PT EntityPointer[T]]() *MemoryRepository[T, PT] {
	return &MemoryRepository[T, PT]{
		entities: make(map[int]T),
	}
}

// GetAll returns all records ordered by ID.
func (r *MemoryRepository[T, PT]) GetAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.entities))
	for id := range r.entities {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	list := make([]T, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.entities[id])
	}
	return list, nil
}

// GetByID returns a copy of the record with the given ID, or nil.
func (r *MemoryRepository[T, PT]) GetByID(_ context.Context, id int) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.entities[id]
	if !ok {
		return nil, nil
	}
	return &entity, nil
}

// Create stores a copy of entity. An ID is assigned when entity has none;
// a caller-supplied ID is kept and advances the sequence.
func (r *MemoryRepository[T, PT]) Create(_ context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := PT(entity)
	if id := e.EntityID(); id > 0 {
		if _, ok := r.entities[id]; ok {
			return fmt.Errorf("failed to create record %d: %w", id, ErrDuplicateID)
		}
		if id > r.lastID {
			r.lastID = id
		}
	} else {
		r.lastID++
		e.SetEntityID(r.lastID)
	}
	r.entities[e.EntityID()] = *entity
	return nil
}

// Update replaces the stored record sharing entity's ID.
func (r *MemoryRepository[T, PT]) Update(_ context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entities[PT(entity).EntityID()] = *entity
	return nil
}

// Delete removes the record sharing entity's ID.
func (r *MemoryRepository[T, PT]) Delete(_ context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entities, PT(entity).EntityID())
	return nil
}
