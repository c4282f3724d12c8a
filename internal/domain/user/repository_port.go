// internal/domain/user/repository_port.go
package user

import "context"

// Repository is the persistence port for the "users" collection.
type Repository interface {
	// GetByUID returns ErrNotFound when missing.
	GetByUID(ctx context.Context, uid string) (Profile, error)

	// Save creates or overwrites the profile.
	Save(ctx context.Context, p Profile) error

	// ListPendingManagers returns store managers with approved == false.
	ListPendingManagers(ctx context.Context) ([]Profile, error)

	Delete(ctx context.Context, uid string) error
}
