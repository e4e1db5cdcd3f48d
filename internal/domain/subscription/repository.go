package subscription

import "context"

// Repository defines the interface for subscription data access. Creation
// happens only through the account repository's atomic registration insert.
type Repository interface {
	// GetByAccount retrieves the account's subscription
	GetByAccount(ctx context.Context, accountID string) (*Subscription, error)

	// UpdateTier changes the subscription's tier
	UpdateTier(ctx context.Context, accountID, tier string) error

	// IncrementUsage adds one consumed upload to the monthly counter
	IncrementUsage(ctx context.Context, accountID string) error

	// ResetAllUsage zeroes every subscription's monthly counter. Returns the
	// number of subscriptions reset.
	ResetAllUsage(ctx context.Context) (int64, error)
}
