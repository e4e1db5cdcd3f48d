package middleware

import (
	"context"
	"net/http"

	"github.com/fraudlens/fraudlens/internal/auth"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/utils"
)

// ContextKey is a custom type for context keys
type ContextKey string

const (
	// AccountIDKey is the context key for the authenticated account ID
	AccountIDKey ContextKey = "accountID"
	// AccountEmailKey is the context key for the authenticated email
	AccountEmailKey ContextKey = "email"
)

// Auth returns a middleware that requires a valid session token, taken from
// the Authorization header or the session cookie
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.SessionFromRequest(r)
			if tokenStr == "" {
				utils.WriteError(w, errors.Unauthenticated("Authentication required"))
				return
			}

			claims, err := auth.ParseSession(tokenStr, jwtSecret)
			if err != nil {
				utils.WriteError(w, errors.Unauthenticated("Invalid or expired session"))
				return
			}

			ctx := context.WithValue(r.Context(), AccountIDKey, claims.AccountID)
			ctx = context.WithValue(ctx, AccountEmailKey, claims.Email)

			AddLogField(w, "account_id", claims.AccountID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAccountID extracts the authenticated account ID from the request context
func GetAccountID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(AccountIDKey).(string)
	return id, ok && id != ""
}

// GetAccountEmail extracts the authenticated email from the request context
func GetAccountEmail(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(AccountEmailKey).(string)
	return email, ok
}
