package account

import "context"

// Service defines the interface for account business logic
type Service interface {
	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id string) (*Account, error)

	// UpdateProfile updates an account's display name
	UpdateProfile(ctx context.Context, id string, name *string) (*Account, error)

	// Delete deletes an account and everything it owns
	Delete(ctx context.Context, id string) error
}
