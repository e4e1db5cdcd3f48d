package subscription

import "context"

// Summary is the subscription projection embedded in account responses
type Summary struct {
	Tier                string `json:"tier"`
	CSVUploadsThisMonth int    `json:"csvUploadsThisMonth"`
	IsActive            bool   `json:"isActive"`
}

// Service defines the interface for subscription business logic
type Service interface {
	// GetByAccount retrieves the account's subscription
	GetByAccount(ctx context.Context, accountID string) (*Subscription, error)

	// Summary returns the subscription projection for account responses
	Summary(ctx context.Context, accountID string) (*Summary, error)

	// ChangeTier moves the subscription to a different tier
	ChangeTier(ctx context.Context, accountID, tier string) (*Subscription, error)

	// ResetAllUsage zeroes every monthly usage counter (run by the
	// scheduled worker at the start of each month)
	ResetAllUsage(ctx context.Context) (int64, error)
}
