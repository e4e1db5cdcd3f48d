package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fraudlens/fraudlens/internal/api/dto"
	"github.com/fraudlens/fraudlens/internal/api/middleware"
	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/utils"
	"github.com/fraudlens/fraudlens/internal/pkg/validator"
)

// SubscriptionHandler handles subscription requests
type SubscriptionHandler struct {
	subscriptionService subscription.Service
	logger              *logger.Logger
	validator           *validator.Validator
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService subscription.Service, log *logger.Logger, val *validator.Validator) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		logger:              log,
		validator:           val,
	}
}

// Get returns the account's subscription
// @Summary Get the current subscription
// @Tags Subscription
// @Produce json
// @Success 200 {object} subscription.Subscription "Subscription"
// @Router /api/v1/subscription [get]
func (h *SubscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	sub, err := h.subscriptionService.GetByAccount(r.Context(), accountID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"subscription": sub})
}

// ChangeTier moves the subscription to a different tier
// @Summary Change subscription tier
// @Tags Subscription
// @Accept json
// @Produce json
// @Param request body dto.ChangeTierRequest true "Target tier"
// @Success 200 {object} subscription.Subscription "Updated subscription"
// @Failure 400 {object} utils.ErrorResponse "Unknown tier"
// @Router /api/v1/subscription/tier [put]
func (h *SubscriptionHandler) ChangeTier(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	var req dto.ChangeTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	sub, err := h.subscriptionService.ChangeTier(r.Context(), accountID, req.Tier)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"subscription": sub})
}
