package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
)

// SubscriptionRepository implements subscription.Repository
type SubscriptionRepository struct {
	db *sql.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *sql.DB) subscription.Repository {
	return &SubscriptionRepository{db: db}
}

// GetByAccount retrieves the account's subscription
func (r *SubscriptionRepository) GetByAccount(ctx context.Context, accountID string) (*subscription.Subscription, error) {
	var s subscription.Subscription
	var endDate sql.NullInt64
	var startDate, createdAt, updatedAt int64

	err := r.db.QueryRowContext(ctx, `
		SELECT id, account_id, tier, start_date, end_date, is_active, csv_uploads_this_month, created_at, updated_at
		FROM subscriptions WHERE account_id = ?
	`, accountID).Scan(&s.ID, &s.AccountID, &s.Tier, &startDate, &endDate, &s.IsActive, &s.CSVUploadsThisMonth, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Subscription")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get subscription", err)
	}

	s.StartDate = time.Unix(startDate, 0)
	if endDate.Valid {
		t := time.Unix(endDate.Int64, 0)
		s.EndDate = &t
	}
	s.CreatedAt = time.Unix(createdAt, 0)
	s.UpdatedAt = time.Unix(updatedAt, 0)

	return &s, nil
}

// UpdateTier changes the subscription's tier
func (r *SubscriptionRepository) UpdateTier(ctx context.Context, accountID, tier string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions SET tier = ?, updated_at = ?
		WHERE account_id = ?
	`, tier, time.Now().Unix(), accountID)
	if err != nil {
		return errors.DatabaseError("Failed to update subscription tier", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Subscription")
	}

	return nil
}

// IncrementUsage adds one consumed upload to the monthly counter
func (r *SubscriptionRepository) IncrementUsage(ctx context.Context, accountID string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET csv_uploads_this_month = csv_uploads_this_month + 1, updated_at = ?
		WHERE account_id = ?
	`, time.Now().Unix(), accountID)
	if err != nil {
		return errors.DatabaseError("Failed to increment usage", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Subscription")
	}

	return nil
}

// ResetAllUsage zeroes every subscription's monthly counter
func (r *SubscriptionRepository) ResetAllUsage(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET csv_uploads_this_month = 0, updated_at = ?
		WHERE csv_uploads_this_month > 0
	`, time.Now().Unix())
	if err != nil {
		return 0, errors.DatabaseError("Failed to reset usage counters", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.DatabaseError("Failed to get affected rows", err)
	}

	return rows, nil
}
