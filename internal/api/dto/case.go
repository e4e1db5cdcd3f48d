package dto

import "encoding/json"

// CreateCaseRequest represents a case creation request
type CreateCaseRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// UpdateCaseStatusRequest is the callback body posted by the analysis
// process when a case moves through its lifecycle
type UpdateCaseStatusRequest struct {
	Status  string          `json:"status" validate:"required,oneof=pending processing completed failed"`
	Results json.RawMessage `json:"results,omitempty"`
}

// CaseListResponse represents a paginated case listing
type CaseListResponse struct {
	Cases    interface{} `json:"cases"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}
