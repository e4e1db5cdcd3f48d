package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the token lifetime used when none is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour

// ErrInvalidSession is returned for every session token the server does not
// accept. Signature mismatch, malformed structure and expiry are deliberately
// indistinguishable to the caller.
var ErrInvalidSession = errors.New("invalid session token")

// Claims are the verified contents of a session token
type Claims struct {
	AccountID string `json:"uid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// IssueSession mints a signed session token binding the account identity for
// ttl. The token is a compact three-segment JWT signed with HMAC-SHA256.
func IssueSession(accountID, email, secret string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString([]byte(secret))
}

// ParseSession verifies a session token's signature and expiry and returns its
// claims. Verification is stateless and side-effect free; every failure mode
// collapses to ErrInvalidSession.
func ParseSession(tokenStr, secret string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.AccountID == "" {
		return nil, ErrInvalidSession
	}
	return c, nil
}
