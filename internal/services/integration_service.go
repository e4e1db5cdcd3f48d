package services

import (
	"context"
	"encoding/json"

	"github.com/fraudlens/fraudlens/internal/domain/integration"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
)

// IntegrationService implements integration.Service
type IntegrationService struct {
	repo   integration.Repository
	logger *logger.Logger
}

// NewIntegrationService creates a new integration service
func NewIntegrationService(repo integration.Repository, log *logger.Logger) integration.Service {
	return &IntegrationService{
		repo:   repo,
		logger: log,
	}
}

// Create creates an active integration for the account
func (s *IntegrationService) Create(ctx context.Context, accountID, name, typ string, config json.RawMessage) (*integration.Integration, error) {
	if !integration.ValidType(typ) {
		return nil, errors.BadRequest("Unknown integration type: " + typ)
	}

	i := &integration.Integration{
		AccountID: accountID,
		Name:      name,
		Type:      typ,
		Config:    config,
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, i); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create integration")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"integration_id": i.ID,
		"account_id":     accountID,
		"type":           typ,
	}).Info("Integration created")

	return i, nil
}

// GetByID retrieves an integration owned by the account
func (s *IntegrationService) GetByID(ctx context.Context, accountID, id string) (*integration.Integration, error) {
	return s.repo.GetByID(ctx, accountID, id)
}

// List retrieves an account's integrations
func (s *IntegrationService) List(ctx context.Context, accountID string) ([]*integration.Integration, error) {
	return s.repo.List(ctx, accountID)
}

// Update updates an integration's name and configuration
func (s *IntegrationService) Update(ctx context.Context, accountID, id string, name *string, config json.RawMessage) (*integration.Integration, error) {
	i, err := s.repo.GetByID(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		i.Name = *name
	}
	if config != nil {
		i.Config = config
	}

	if err := s.repo.Update(ctx, i); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update integration")
		return nil, err
	}

	return i, nil
}

// Deactivate flags an integration inactive
func (s *IntegrationService) Deactivate(ctx context.Context, accountID, id string) error {
	if err := s.repo.SetActive(ctx, accountID, id, false); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"integration_id": id,
	}).Info("Integration deactivated")

	return nil
}

// Delete removes an integration permanently
func (s *IntegrationService) Delete(ctx context.Context, accountID, id string) error {
	if err := s.repo.Delete(ctx, accountID, id); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"integration_id": id,
	}).Info("Integration deleted")

	return nil
}
