package account

import (
	"context"

	"github.com/fraudlens/fraudlens/internal/domain/subscription"
)

// Repository defines the interface for account data access
type Repository interface {
	// CreateWithSubscription creates a new account and its subscription as a
	// single atomic unit. If either insert fails, neither persists.
	CreateWithSubscription(ctx context.Context, a *Account, s *subscription.Subscription) error

	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id string) (*Account, error)

	// GetByEmail retrieves an account by normalized email
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// Update updates an account's mutable profile fields
	Update(ctx context.Context, a *Account) error

	// Delete deletes an account. Owned cases, integrations and the
	// subscription are removed in cascade by the storage layer.
	Delete(ctx context.Context, id string) error

	// List retrieves accounts with pagination
	List(ctx context.Context, limit, offset int) ([]*Account, int64, error)
}
