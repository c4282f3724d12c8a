// internal/domain/order/repository_port.go
package order

import "context"

// Filter for listing orders. Empty fields match everything.
type Filter struct {
	CustomerID string
	// StoreName matches orders having at least one sub-order of that store.
	StoreName string
}

// Repository is the persistence port for the "orders" collection.
type Repository interface {
	GetByID(ctx context.Context, id string) (Order, error)

	// List returns matching orders, newest first.
	List(ctx context.Context, f Filter) ([]Order, error)

	// Mutate loads the order, applies fn and writes the result back inside
	// one transaction. fn may run more than once on contention. If fn
	// returns an error nothing is written.
	Mutate(ctx context.Context, id string, fn func(o *Order) error) (Order, error)
}
