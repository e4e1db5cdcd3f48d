package cases

import (
	"context"
	"encoding/json"
	"io"
)

// Service defines the interface for case business logic
type Service interface {
	// Create creates a pending case for the account, charging one upload
	// against the subscription's monthly quota when a file is attached
	Create(ctx context.Context, accountID, name string, description *string) (*Case, error)

	// GetByID retrieves a case owned by the account
	GetByID(ctx context.Context, accountID, id string) (*Case, error)

	// List retrieves an account's cases with pagination
	List(ctx context.Context, accountID string, limit, offset int) ([]*Case, int64, error)

	// Upload stores a case's CSV file and records the file reference. The
	// upload counts against the subscription's monthly quota.
	Upload(ctx context.Context, accountID, id, filename string, r io.Reader, size int64) (*Case, error)

	// UpdateStatus applies a status transition reported by the analysis
	// process, optionally attaching its opaque results payload
	UpdateStatus(ctx context.Context, accountID, id, status string, results json.RawMessage) (*Case, error)

	// Delete deletes a case
	Delete(ctx context.Context, accountID, id string) error
}
