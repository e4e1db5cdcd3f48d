package cases

import (
	"encoding/json"
	"time"
)

// Case represents one fraud-analysis job tied to an uploaded file or data
// source. The analysis pipeline that drives status transitions is an external
// collaborator; this system only stores its outcomes.
type Case struct {
	ID          string  `json:"id"`
	AccountID   string  `json:"account_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	FileURL     *string `json:"file_url,omitempty"`
	// Results is an opaque payload written by the analysis process. Its
	// shape is not defined here.
	Results   json.RawMessage `json:"results,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Case statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ValidStatus reports whether s is a known case status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// ValidTransition reports whether a case may move from one status to another.
// Completed and failed are terminal.
func ValidTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusProcessing || to == StatusCompleted || to == StatusFailed
	case StatusProcessing:
		return to == StatusCompleted || to == StatusFailed
	}
	return false
}
