// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is a persistence port for cart lines.
type Repository interface {
	// ListByUser returns the user's lines, oldest first. No lines is not an error.
	ListByUser(ctx context.Context, userID string) ([]Line, error)

	// Create inserts the line under its LineID.
	// Returns ErrDuplicateLine when a line with the same key exists.
	Create(ctx context.Context, l Line) (Line, error)

	// GetByID returns ErrLineNotFound when missing.
	GetByID(ctx context.Context, id string) (Line, error)

	Delete(ctx context.Context, id string) error
}
