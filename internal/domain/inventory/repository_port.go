// internal/domain/inventory/repository_port.go
package inventory

import "context"

// Filter narrows List at the datastore. Empty fields match everything.
type Filter struct {
	StoreName string
}

// Repository is the persistence port for the "inventory" collection.
type Repository interface {
	// List returns every item matching the filter.
	List(ctx context.Context, f Filter) ([]Item, error)

	// GetByID returns ErrNotFound when missing.
	GetByID(ctx context.Context, id string) (Item, error)

	// Create stores the item; an empty ID is assigned by the implementation.
	Create(ctx context.Context, it Item) (Item, error)

	// Update overwrites the item. Returns ErrNotFound when missing.
	Update(ctx context.Context, it Item) (Item, error)

	Delete(ctx context.Context, id string) error
}
