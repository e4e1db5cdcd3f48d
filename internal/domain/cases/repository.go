package cases

import (
	"context"
	"encoding/json"
)

// Repository defines the interface for case data access. All reads and writes
// are scoped to the owning account.
type Repository interface {
	// Create creates a new case
	Create(ctx context.Context, c *Case) error

	// GetByID retrieves a case owned by accountID
	GetByID(ctx context.Context, accountID, id string) (*Case, error)

	// List retrieves an account's cases with pagination
	List(ctx context.Context, accountID string, limit, offset int) ([]*Case, int64, error)

	// UpdateStatus records a status transition and, optionally, the results
	// payload produced by the analysis process
	UpdateStatus(ctx context.Context, accountID, id, status string, results json.RawMessage) error

	// AttachFile records the uploaded-file reference of a case
	AttachFile(ctx context.Context, accountID, id, fileURL string) error

	// Delete deletes a case
	Delete(ctx context.Context, accountID, id string) error
}
