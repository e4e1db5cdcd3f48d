package dto

import "encoding/json"

// CreateIntegrationRequest represents an integration creation request
type CreateIntegrationRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Type string `json:"type" validate:"required,oneof=api sql"`
	// Config is an opaque, integration-specific configuration blob
	Config json.RawMessage `json:"config,omitempty"`
}

// UpdateIntegrationRequest represents an integration update request
type UpdateIntegrationRequest struct {
	Name   *string         `json:"name,omitempty" validate:"omitempty,max=200"`
	Config json.RawMessage `json:"config,omitempty"`
}
