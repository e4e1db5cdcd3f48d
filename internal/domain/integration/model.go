package integration

import (
	"encoding/json"
	"time"
)

// Integration represents a configured external data connection usable by
// future cases.
type Integration struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	// Config holds connection details as an opaque payload; this system
	// does not interpret it.
	Config    json.RawMessage `json:"config"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Integration types
const (
	TypeAPI = "api"
	TypeSQL = "sql"
)

// ValidType reports whether t is a known integration type.
func ValidType(t string) bool {
	return t == TypeAPI || t == TypeSQL
}
