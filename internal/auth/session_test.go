package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSetSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "the-token", time.Hour, false)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Name != SessionCookieName {
		t.Errorf("Cookie name = %q, want %q", c.Name, SessionCookieName)
	}
	if c.Value != "the-token" {
		t.Errorf("Cookie value = %q, want %q", c.Value, "the-token")
	}
	if !c.HttpOnly {
		t.Error("Session cookie must be HttpOnly")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Error("Session cookie must be SameSite=Strict")
	}
	if c.Path != "/" {
		t.Errorf("Cookie path = %q, want /", c.Path)
	}
	if c.MaxAge != 3600 {
		t.Errorf("Cookie MaxAge = %d, want 3600", c.MaxAge)
	}
}

func TestSetSessionCookie_SecureInProduction(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "the-token", time.Hour, true)

	if !rec.Result().Cookies()[0].Secure {
		t.Error("Session cookie must be Secure when requested")
	}
}

func TestClearSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearSessionCookie(rec, false)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Value != "" {
		t.Errorf("Cleared cookie value = %q, want empty", c.Value)
	}
	if c.MaxAge >= 0 {
		t.Errorf("Cleared cookie MaxAge = %d, want negative", c.MaxAge)
	}
}

func TestSessionFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  string
	}{
		{
			name:  "no credentials",
			setup: func(r *http.Request) {},
			want:  "",
		},
		{
			name: "bearer header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
			},
			want: "header-token",
		},
		{
			name: "cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
			},
			want: "cookie-token",
		},
		{
			name: "header wins over cookie",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
			},
			want: "header-token",
		},
		{
			name: "malformed header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic abc123")
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(r)
			if got := SessionFromRequest(r); got != tt.want {
				t.Errorf("SessionFromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCurrentIdentity(t *testing.T) {
	token, err := IssueSession("acct-1", "a@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	claims, ok := CurrentIdentity(r, testSecret)
	if !ok {
		t.Fatal("Expected a valid identity")
	}
	if claims.AccountID != "acct-1" {
		t.Errorf("AccountID = %q, want acct-1", claims.AccountID)
	}

	anon := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := CurrentIdentity(anon, testSecret); ok {
		t.Error("Expected no identity for an anonymous request")
	}
}
