package client

import (
	"encoding/json"
	"time"
)

// Account represents an account in API responses
type Account struct {
	ID           string               `json:"id"`
	Email        string               `json:"email"`
	Name         *string              `json:"name,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	Subscription *SubscriptionSummary `json:"subscription,omitempty"`
}

// SubscriptionSummary is the subscription projection embedded in account
// responses
type SubscriptionSummary struct {
	Tier                string `json:"tier"`
	CSVUploadsThisMonth int    `json:"csvUploadsThisMonth"`
	IsActive            bool   `json:"isActive"`
}

// Subscription represents the full subscription record
type Subscription struct {
	ID                  string     `json:"id"`
	AccountID           string     `json:"account_id"`
	Tier                string     `json:"tier"`
	StartDate           time.Time  `json:"start_date"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	IsActive            bool       `json:"is_active"`
	CSVUploadsThisMonth int        `json:"csv_uploads_this_month"`
}

// Case represents a fraud case
type Case struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Status      string          `json:"status"`
	FileURL     *string         `json:"file_url,omitempty"`
	Results     json.RawMessage `json:"results,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Integration represents a data-source integration
type Integration struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Config    json.RawMessage `json:"config,omitempty"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CaseList is a paginated case listing
type CaseList struct {
	Cases    []*Case `json:"cases"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}
