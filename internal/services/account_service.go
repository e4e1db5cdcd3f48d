package services

import (
	"context"

	"github.com/fraudlens/fraudlens/internal/domain/account"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
)

// AccountService implements account.Service
type AccountService struct {
	repo   account.Repository
	logger *logger.Logger
}

// NewAccountService creates a new account service
func NewAccountService(repo account.Repository, log *logger.Logger) account.Service {
	return &AccountService{
		repo:   repo,
		logger: log,
	}
}

// GetByID retrieves an account by ID
func (s *AccountService) GetByID(ctx context.Context, id string) (*account.Account, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile updates an account's display name
func (s *AccountService) UpdateProfile(ctx context.Context, id string, name *string) (*account.Account, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Name = name
	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update account")
		return nil, err
	}

	return a, nil
}

// Delete deletes an account. Cases, integrations and the subscription owned
// by the account are removed in cascade.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"account_id": id,
	}).Info("Account deleted")

	return nil
}
