package integration

import (
	"context"
	"encoding/json"
)

// Service defines the interface for integration business logic
type Service interface {
	// Create creates an active integration for the account
	Create(ctx context.Context, accountID, name, typ string, config json.RawMessage) (*Integration, error)

	// GetByID retrieves an integration owned by the account
	GetByID(ctx context.Context, accountID, id string) (*Integration, error)

	// List retrieves an account's integrations
	List(ctx context.Context, accountID string) ([]*Integration, error)

	// Update updates an integration's name and configuration
	Update(ctx context.Context, accountID, id string, name *string, config json.RawMessage) (*Integration, error)

	// Deactivate flags an integration inactive. Integrations are not hard
	// deleted in the normal flow.
	Deactivate(ctx context.Context, accountID, id string) error

	// Delete removes an integration permanently
	Delete(ctx context.Context, accountID, id string) error
}
