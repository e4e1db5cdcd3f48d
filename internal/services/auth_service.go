package services

import (
	"context"
	"time"

	"github.com/fraudlens/fraudlens/internal/auth"
	"github.com/fraudlens/fraudlens/internal/domain/account"
	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/metrics"
)

// AuthService handles registration, login and session identity
type AuthService struct {
	accounts   account.Repository
	jwtSecret  string
	sessionTTL time.Duration
	bcryptCost int
	logger     *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(accounts account.Repository, jwtSecret string, sessionTTL time.Duration, bcryptCost int, log *logger.Logger) *AuthService {
	return &AuthService{
		accounts:   accounts,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
		logger:     log,
	}
}

// SessionTTL returns the lifetime of issued session tokens
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Register creates a new account with a free subscription and returns it
// together with a session token. The account and its subscription are
// created atomically.
func (s *AuthService) Register(ctx context.Context, email, password string, name *string) (*account.Account, string, error) {
	email = account.NormalizeEmail(email)

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to hash password")
		return nil, "", errors.Internal("Failed to process password", err)
	}

	a := &account.Account{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	sub := &subscription.Subscription{
		Tier:      subscription.TierFree,
		StartDate: time.Now(),
		IsActive:  true,
	}

	if err := s.accounts.CreateWithSubscription(ctx, a, sub); err != nil {
		return nil, "", err
	}

	token, err := auth.IssueSession(a.ID, a.Email, s.jwtSecret, s.sessionTTL)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to issue session token")
		return nil, "", errors.Internal("Failed to create session", err)
	}

	metrics.RecordSignup()
	s.logger.WithFields(map[string]interface{}{
		"account_id": a.ID,
		"email":      a.Email,
	}).Info("Account registered")

	return a, token, nil
}

// Login verifies credentials and returns the account with a fresh session
// token. Unknown emails and wrong passwords produce the same error so the
// response never reveals whether an email is registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*account.Account, string, error) {
	email = account.NormalizeEmail(email)

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			metrics.RecordLogin("failure")
			return nil, "", errors.Unauthenticated("Invalid email or password")
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, a.PasswordHash) {
		metrics.RecordLogin("failure")
		return nil, "", errors.Unauthenticated("Invalid email or password")
	}

	token, err := auth.IssueSession(a.ID, a.Email, s.jwtSecret, s.sessionTTL)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to issue session token")
		return nil, "", errors.Internal("Failed to create session", err)
	}

	metrics.RecordLogin("success")
	s.logger.WithFields(map[string]interface{}{
		"account_id": a.ID,
	}).Info("Account logged in")

	return a, token, nil
}

// CurrentAccount resolves a session token's claims to the live account row.
// A valid token whose account has since been deleted resolves to not found.
func (s *AuthService) CurrentAccount(ctx context.Context, claims *auth.Claims) (*account.Account, error) {
	return s.accounts.GetByID(ctx, claims.AccountID)
}
