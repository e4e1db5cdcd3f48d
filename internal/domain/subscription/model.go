package subscription

import "time"

// Subscription is the billing tier and usage counters attached to an account.
// Exactly one exists per account; it is created alongside the account at
// registration.
type Subscription struct {
	ID                  string     `json:"id"`
	AccountID           string     `json:"account_id"`
	Tier                string     `json:"tier"`
	StartDate           time.Time  `json:"start_date"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	IsActive            bool       `json:"is_active"`
	CSVUploadsThisMonth int        `json:"csv_uploads_this_month"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Subscription tiers
const (
	TierFree     = "free"
	TierStandard = "standard"
	TierPro      = "pro"
)

// Monthly CSV upload limits per tier. Zero means unlimited.
var uploadLimits = map[string]int{
	TierFree:     10,
	TierStandard: 100,
	TierPro:      0,
}

// ValidTier reports whether t is a known tier.
func ValidTier(t string) bool {
	_, ok := uploadLimits[t]
	return ok
}

// UploadLimit returns the monthly upload limit for a tier. Zero means
// unlimited.
func UploadLimit(tier string) int {
	return uploadLimits[tier]
}

// CanUpload reports whether the subscription has monthly quota left for one
// more upload.
func (s *Subscription) CanUpload() bool {
	limit := UploadLimit(s.Tier)
	return limit == 0 || s.CSVUploadsThisMonth < limit
}
