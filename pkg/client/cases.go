package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// CaseService provides fraud case operations
type CaseService struct {
	client *Client
}

// CreateCaseRequest represents a case creation request
type CreateCaseRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateCaseStatusRequest reports a status transition for a case
type UpdateCaseStatusRequest struct {
	Status  string          `json:"status"`
	Results json.RawMessage `json:"results,omitempty"`
}

type caseResponse struct {
	Case *Case `json:"case"`
}

// Create creates a new pending case
func (s *CaseService) Create(ctx context.Context, req CreateCaseRequest) (*Case, error) {
	var resp caseResponse
	if err := s.client.doRequest(ctx, "POST", "/api/v1/cases", req, &resp); err != nil {
		return nil, err
	}
	return resp.Case, nil
}

// List returns the account's cases
func (s *CaseService) List(ctx context.Context, page, pageSize int) (*CaseList, error) {
	path := fmt.Sprintf("/api/v1/cases?page=%d&page_size=%d", page, pageSize)
	var resp CaseList
	if err := s.client.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get returns one case
func (s *CaseService) Get(ctx context.Context, id string) (*Case, error) {
	var resp caseResponse
	if err := s.client.doRequest(ctx, "GET", "/api/v1/cases/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Case, nil
}

// Upload attaches a CSV file to a case. The upload counts against the
// subscription's monthly quota.
func (s *CaseService) Upload(ctx context.Context, id, filename string, content io.Reader) (*Case, error) {
	var resp caseResponse
	if err := s.client.doUpload(ctx, "/api/v1/cases/"+id+"/upload", filename, content, &resp); err != nil {
		return nil, err
	}
	return resp.Case, nil
}

// UpdateStatus reports a status transition for a case
func (s *CaseService) UpdateStatus(ctx context.Context, id string, req UpdateCaseStatusRequest) (*Case, error) {
	var resp caseResponse
	if err := s.client.doRequest(ctx, "PATCH", "/api/v1/cases/"+id+"/status", req, &resp); err != nil {
		return nil, err
	}
	return resp.Case, nil
}

// Delete removes a case
func (s *CaseService) Delete(ctx context.Context, id string) error {
	return s.client.doRequest(ctx, "DELETE", "/api/v1/cases/"+id, nil, nil)
}
