package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fraudlens/fraudlens/internal/api/dto"
	"github.com/fraudlens/fraudlens/internal/api/middleware"
	"github.com/fraudlens/fraudlens/internal/auth"
	"github.com/fraudlens/fraudlens/internal/config"
	"github.com/fraudlens/fraudlens/internal/domain/account"
	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/utils"
	"github.com/fraudlens/fraudlens/internal/pkg/validator"
	"github.com/fraudlens/fraudlens/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService         *services.AuthService
	accountService      account.Service
	subscriptionService subscription.Service
	config              *config.Config
	logger              *logger.Logger
	validator           *validator.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authService *services.AuthService,
	accountService account.Service,
	subscriptionService subscription.Service,
	cfg *config.Config,
	log *logger.Logger,
	val *validator.Validator,
) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		accountService:      accountService,
		subscriptionService: subscriptionService,
		config:              cfg,
		logger:              log,
		validator:           val,
	}
}

// Signup handles account registration
// @Summary Register a new account
// @Description Create an account with a free subscription and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse "Account created"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 409 {object} utils.ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	a, token, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	auth.SetSessionCookie(w, token, h.authService.SessionTTL(), h.config.Server.IsProduction())
	utils.WriteJSON(w, http.StatusCreated, dto.AuthResponse{User: dto.NewAccountDTO(a)})
}

// Login handles account login
// @Summary Log in
// @Description Authenticate with email and password and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Successfully authenticated"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	a, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	auth.SetSessionCookie(w, token, h.authService.SessionTTL(), h.config.Server.IsProduction())
	utils.WriteJSON(w, http.StatusOK, dto.AuthResponse{User: dto.NewAccountDTO(a)})
}

// Logout ends the session by clearing the session cookie. It succeeds whether
// or not a session was active.
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponse "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.config.Server.IsProduction())
	utils.WriteMessage(w, http.StatusOK, "Logged out")
}

// Me returns the authenticated account with its subscription summary
// @Summary Current account
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.AuthResponse "Authenticated account"
// @Failure 401 {object} utils.ErrorResponse "Not authenticated"
// @Failure 404 {object} utils.ErrorResponse "Account no longer exists"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.CurrentIdentity(r, h.config.Auth.JWTSecret)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	a, err := h.authService.CurrentAccount(r.Context(), claims)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	acct := dto.NewAccountDTO(a)
	if summary, err := h.subscriptionService.Summary(r.Context(), a.ID); err == nil {
		acct.Subscription = summary
	} else {
		h.logger.ErrorWithErr(err, "Failed to load subscription summary")
	}

	utils.WriteJSON(w, http.StatusOK, dto.AuthResponse{User: acct})
}

// DeleteAccount deletes the authenticated account and everything it owns
// @Summary Delete the current account
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponse "Account deleted"
// @Failure 401 {object} utils.ErrorResponse "Not authenticated"
// @Router /auth/me [delete]
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Authentication required"))
		return
	}

	if err := h.accountService.Delete(r.Context(), accountID); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	auth.ClearSessionCookie(w, h.config.Server.IsProduction())
	utils.WriteMessage(w, http.StatusOK, "Account deleted")
}
