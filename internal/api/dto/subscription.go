package dto

// ChangeTierRequest represents a subscription tier change request
type ChangeTierRequest struct {
	Tier string `json:"tier" validate:"required,oneof=free standard pro"`
}
