package auth

import (
	"net/http"
	"strings"
	"time"
)

// SessionCookieName is the browser cookie holding the session token.
const SessionCookieName = "session"

// SetSessionCookie stores the session token in an HTTP-only, same-site cookie
// scoped to the whole site. secure must be true in production so the cookie is
// only sent over TLS.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
	})
}

// ClearSessionCookie deletes the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// SessionFromRequest extracts the raw session token from the request, checking
// the Authorization header first and the session cookie second. An empty
// string means the request is unauthenticated.
func SessionFromRequest(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// CurrentIdentity resolves the authenticated identity of a request, if any.
// A missing token and a failed verification both yield (nil, false); this
// never raises.
func CurrentIdentity(r *http.Request, secret string) (*Claims, bool) {
	tokenStr := SessionFromRequest(r)
	if tokenStr == "" {
		return nil, false
	}
	claims, err := ParseSession(tokenStr, secret)
	if err != nil {
		return nil, false
	}
	return claims, true
}
