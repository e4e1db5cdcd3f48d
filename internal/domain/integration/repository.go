package integration

import "context"

// Repository defines the interface for integration data access
type Repository interface {
	// Create creates a new integration
	Create(ctx context.Context, i *Integration) error

	// GetByID retrieves an integration owned by accountID
	GetByID(ctx context.Context, accountID, id string) (*Integration, error)

	// List retrieves an account's integrations
	List(ctx context.Context, accountID string) ([]*Integration, error)

	// Update updates an integration's name and configuration
	Update(ctx context.Context, i *Integration) error

	// SetActive toggles an integration's active flag
	SetActive(ctx context.Context, accountID, id string, active bool) error

	// Delete deletes an integration
	Delete(ctx context.Context, accountID, id string) error
}
