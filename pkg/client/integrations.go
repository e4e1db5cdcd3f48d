package client

import (
	"context"
	"encoding/json"
)

// IntegrationService provides data-source integration operations
type IntegrationService struct {
	client *Client
}

// CreateIntegrationRequest represents an integration creation request
type CreateIntegrationRequest struct {
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Config json.RawMessage `json:"config,omitempty"`
}

// UpdateIntegrationRequest represents an integration update request
type UpdateIntegrationRequest struct {
	Name   *string         `json:"name,omitempty"`
	Config json.RawMessage `json:"config,omitempty"`
}

type integrationResponse struct {
	Integration *Integration `json:"integration"`
}

type integrationListResponse struct {
	Integrations []*Integration `json:"integrations"`
}

// Create creates a new active integration
func (s *IntegrationService) Create(ctx context.Context, req CreateIntegrationRequest) (*Integration, error) {
	var resp integrationResponse
	if err := s.client.doRequest(ctx, "POST", "/api/v1/integrations", req, &resp); err != nil {
		return nil, err
	}
	return resp.Integration, nil
}

// List returns the account's integrations
func (s *IntegrationService) List(ctx context.Context) ([]*Integration, error) {
	var resp integrationListResponse
	if err := s.client.doRequest(ctx, "GET", "/api/v1/integrations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Integrations, nil
}

// Get returns one integration
func (s *IntegrationService) Get(ctx context.Context, id string) (*Integration, error) {
	var resp integrationResponse
	if err := s.client.doRequest(ctx, "GET", "/api/v1/integrations/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Integration, nil
}

// Update updates an integration's name and configuration
func (s *IntegrationService) Update(ctx context.Context, id string, req UpdateIntegrationRequest) (*Integration, error) {
	var resp integrationResponse
	if err := s.client.doRequest(ctx, "PUT", "/api/v1/integrations/"+id, req, &resp); err != nil {
		return nil, err
	}
	return resp.Integration, nil
}

// Deactivate flags an integration inactive without deleting it
func (s *IntegrationService) Deactivate(ctx context.Context, id string) error {
	return s.client.doRequest(ctx, "POST", "/api/v1/integrations/"+id+"/deactivate", nil, nil)
}

// Delete removes an integration permanently
func (s *IntegrationService) Delete(ctx context.Context, id string) error {
	return s.client.doRequest(ctx, "DELETE", "/api/v1/integrations/"+id, nil, nil)
}
