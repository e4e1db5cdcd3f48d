package services

import (
	"context"

	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/metrics"
)

// SubscriptionService implements subscription.Service
type SubscriptionService struct {
	repo   subscription.Repository
	logger *logger.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(repo subscription.Repository, log *logger.Logger) subscription.Service {
	return &SubscriptionService{
		repo:   repo,
		logger: log,
	}
}

// GetByAccount retrieves the account's subscription
func (s *SubscriptionService) GetByAccount(ctx context.Context, accountID string) (*subscription.Subscription, error) {
	return s.repo.GetByAccount(ctx, accountID)
}

// Summary returns the subscription projection for account responses
func (s *SubscriptionService) Summary(ctx context.Context, accountID string) (*subscription.Summary, error) {
	sub, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &subscription.Summary{
		Tier:                sub.Tier,
		CSVUploadsThisMonth: sub.CSVUploadsThisMonth,
		IsActive:            sub.IsActive,
	}, nil
}

// ChangeTier moves the subscription to a different tier
func (s *SubscriptionService) ChangeTier(ctx context.Context, accountID, tier string) (*subscription.Subscription, error) {
	if !subscription.ValidTier(tier) {
		return nil, errors.BadRequest("Unknown subscription tier: " + tier)
	}

	if err := s.repo.UpdateTier(ctx, accountID, tier); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"account_id": accountID,
		"tier":       tier,
	}).Info("Subscription tier changed")

	return s.repo.GetByAccount(ctx, accountID)
}

// ResetAllUsage zeroes every monthly usage counter. It is invoked by the
// scheduled worker at the start of each month.
func (s *SubscriptionService) ResetAllUsage(ctx context.Context) (int64, error) {
	n, err := s.repo.ResetAllUsage(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to reset usage counters")
		return 0, err
	}

	metrics.RecordUsageReset()
	s.logger.WithFields(map[string]interface{}{
		"subscriptions": n,
	}).Info("Monthly usage counters reset")

	return n, nil
}
