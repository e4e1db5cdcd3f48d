package dto

import (
	"time"

	"github.com/fraudlens/fraudlens/internal/domain/account"
	"github.com/fraudlens/fraudlens/internal/domain/subscription"
)

// AccountDTO represents an account in API responses
type AccountDTO struct {
	ID           string                `json:"id"`
	Email        string                `json:"email"`
	Name         *string               `json:"name,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	Subscription *subscription.Summary `json:"subscription,omitempty"`
}

// NewAccountDTO maps a domain account to its API shape
func NewAccountDTO(a *account.Account) *AccountDTO {
	return &AccountDTO{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

// UpdateAccountRequest represents a profile update request
type UpdateAccountRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
}
