package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fraudlens/fraudlens/internal/api/dto"
	"github.com/fraudlens/fraudlens/internal/api/middleware"
	"github.com/fraudlens/fraudlens/internal/domain/cases"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/utils"
	"github.com/fraudlens/fraudlens/internal/pkg/validator"
)

// maxUploadSize caps multipart case file uploads at 32 MiB
const maxUploadSize = 32 << 20

// CaseHandler handles fraud case requests
type CaseHandler struct {
	caseService cases.Service
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(caseService cases.Service, log *logger.Logger, val *validator.Validator) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
		logger:      log,
		validator:   val,
	}
}

// Create handles case creation
// @Summary Create a case
// @Tags Cases
// @Accept json
// @Produce json
// @Param request body dto.CreateCaseRequest true "Case details"
// @Success 201 {object} cases.Case "Case created"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Router /api/v1/cases [post]
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	var req dto.CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	c, err := h.caseService.Create(r.Context(), accountID, req.Name, req.Description)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{"case": c})
}

// List handles case listing with pagination
// @Summary List cases
// @Tags Cases
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.CaseListResponse "Cases"
// @Router /api/v1/cases [get]
func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	p := utils.ParsePagination(r)
	list, total, err := h.caseService.List(r.Context(), accountID, p.PageSize, p.Offset())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.CaseListResponse{
		Cases:    list,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
}

// Get handles fetching one case
// @Summary Get a case
// @Tags Cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} cases.Case "Case"
// @Failure 404 {object} utils.ErrorResponse "Case not found"
// @Router /api/v1/cases/{id} [get]
func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	c, err := h.caseService.GetByID(r.Context(), accountID, chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"case": c})
}

// Upload handles a multipart CSV upload for a case
// @Summary Upload a case file
// @Tags Cases
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Case ID"
// @Param file formData file true "CSV file"
// @Success 200 {object} cases.Case "Case with file reference"
// @Failure 403 {object} utils.ErrorResponse "Monthly upload limit reached"
// @Router /api/v1/cases/{id}/upload [post]
func (h *CaseHandler) Upload(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid multipart request"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Missing file field"))
		return
	}
	defer file.Close()

	c, err := h.caseService.Upload(r.Context(), accountID, chi.URLParam(r, "id"), header.Filename, file, header.Size)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"case": c})
}

// UpdateStatus handles the status callback from the analysis process
// @Summary Update case status
// @Tags Cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param request body dto.UpdateCaseStatusRequest true "New status"
// @Success 200 {object} cases.Case "Updated case"
// @Failure 409 {object} utils.ErrorResponse "Invalid status transition"
// @Router /api/v1/cases/{id}/status [patch]
func (h *CaseHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	var req dto.UpdateCaseStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	c, err := h.caseService.UpdateStatus(r.Context(), accountID, chi.URLParam(r, "id"), req.Status, req.Results)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"case": c})
}

// Delete handles case deletion
// @Summary Delete a case
// @Tags Cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} utils.MessageResponse "Case deleted"
// @Failure 404 {object} utils.ErrorResponse "Case not found"
// @Router /api/v1/cases/{id} [delete]
func (h *CaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	if err := h.caseService.Delete(r.Context(), accountID, chi.URLParam(r, "id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Case deleted")
}
