package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fraudlens/fraudlens/internal/api/dto"
	"github.com/fraudlens/fraudlens/internal/api/middleware"
	"github.com/fraudlens/fraudlens/internal/domain/integration"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/utils"
	"github.com/fraudlens/fraudlens/internal/pkg/validator"
)

// IntegrationHandler handles data-source integration requests
type IntegrationHandler struct {
	integrationService integration.Service
	logger             *logger.Logger
	validator          *validator.Validator
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(integrationService integration.Service, log *logger.Logger, val *validator.Validator) *IntegrationHandler {
	return &IntegrationHandler{
		integrationService: integrationService,
		logger:             log,
		validator:          val,
	}
}

// Create handles integration creation
// @Summary Create an integration
// @Tags Integrations
// @Accept json
// @Produce json
// @Param request body dto.CreateIntegrationRequest true "Integration details"
// @Success 201 {object} integration.Integration "Integration created"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Router /api/v1/integrations [post]
func (h *IntegrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	var req dto.CreateIntegrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	i, err := h.integrationService.Create(r.Context(), accountID, req.Name, req.Type, req.Config)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{"integration": i})
}

// List handles listing the account's integrations
// @Summary List integrations
// @Tags Integrations
// @Produce json
// @Success 200 {object} map[string]interface{} "Integrations"
// @Router /api/v1/integrations [get]
func (h *IntegrationHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	list, err := h.integrationService.List(r.Context(), accountID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"integrations": list})
}

// Get handles fetching one integration
// @Summary Get an integration
// @Tags Integrations
// @Produce json
// @Param id path string true "Integration ID"
// @Success 200 {object} integration.Integration "Integration"
// @Failure 404 {object} utils.ErrorResponse "Integration not found"
// @Router /api/v1/integrations/{id} [get]
func (h *IntegrationHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	i, err := h.integrationService.GetByID(r.Context(), accountID, chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"integration": i})
}

// Update handles integration updates
// @Summary Update an integration
// @Tags Integrations
// @Accept json
// @Produce json
// @Param id path string true "Integration ID"
// @Param request body dto.UpdateIntegrationRequest true "Fields to update"
// @Success 200 {object} integration.Integration "Updated integration"
// @Failure 404 {object} utils.ErrorResponse "Integration not found"
// @Router /api/v1/integrations/{id} [put]
func (h *IntegrationHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	var req dto.UpdateIntegrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	i, err := h.integrationService.Update(r.Context(), accountID, chi.URLParam(r, "id"), req.Name, req.Config)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"integration": i})
}

// Deactivate flags an integration inactive without deleting it
// @Summary Deactivate an integration
// @Tags Integrations
// @Produce json
// @Param id path string true "Integration ID"
// @Success 200 {object} utils.MessageResponse "Integration deactivated"
// @Failure 404 {object} utils.ErrorResponse "Integration not found"
// @Router /api/v1/integrations/{id}/deactivate [post]
func (h *IntegrationHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	if err := h.integrationService.Deactivate(r.Context(), accountID, chi.URLParam(r, "id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Integration deactivated")
}

// Delete handles permanent integration removal
// @Summary Delete an integration
// @Tags Integrations
// @Produce json
// @Param id path string true "Integration ID"
// @Success 200 {object} utils.MessageResponse "Integration deleted"
// @Failure 404 {object} utils.ErrorResponse "Integration not found"
// @Router /api/v1/integrations/{id} [delete]
func (h *IntegrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	if err := h.integrationService.Delete(r.Context(), accountID, chi.URLParam(r, "id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Integration deleted")
}
