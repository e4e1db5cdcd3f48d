package integration

import (
	"net/http"
	"strings"
	"testing"
)

func TestAuth_Signup(t *testing.T) {
	app := newTestApp(t)

	resp := app.request(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "new@example.com",
		"password": "password123",
		"name":     "New User",
	})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Signup returned %d, want 201", resp.StatusCode)
	}

	cookie := sessionCookie(resp)
	if cookie == nil {
		t.Fatal("Expected a session cookie")
	}
	if !cookie.HttpOnly {
		t.Error("Session cookie must be HttpOnly")
	}
	if cookie.Value == "" {
		t.Error("Session cookie has no value")
	}

	body := decodeBody(t, resp)
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("Missing user object in response: %v", body)
	}
	if user["email"] != "new@example.com" {
		t.Errorf("email = %v, want new@example.com", user["email"])
	}
	if _, present := user["password"]; present {
		t.Error("Response leaks a password field")
	}
	if user["id"] == "" || user["id"] == nil {
		t.Error("Response has no account ID")
	}
}

func TestAuth_SignupDuplicate(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "taken@example.com", "password123")

	resp := app.request(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "taken@example.com",
		"password": "differentpass",
	})

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("Duplicate signup returned %d, want 409", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["code"] != "CONFLICT" {
		t.Errorf("code = %v, want CONFLICT", body["code"])
	}
}

func TestAuth_SignupValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"short password", map[string]string{"email": "a@example.com", "password": "short"}},
		{"password over bcrypt's 72-byte limit", map[string]string{"email": "a@example.com", "password": strings.Repeat("a", 73)}},
		{"bad email", map[string]string{"email": "not-an-email", "password": "password123"}},
		{"missing email", map[string]string{"password": "password123"}},
		{"missing password", map[string]string{"email": "a@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := app.request(t, http.MethodPost, "/auth/signup", tt.payload)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("Returned %d, want 400", resp.StatusCode)
			}
			body := decodeBody(t, resp)
			if body["code"] != "VALIDATION_ERROR" {
				t.Errorf("code = %v, want VALIDATION_ERROR", body["code"])
			}
		})
	}
}

func TestAuth_Login(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "login@example.com", "password123")

	resp := app.request(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "password123",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Login returned %d, want 200", resp.StatusCode)
	}
	if sessionCookie(resp) == nil {
		t.Error("Expected a session cookie")
	}
	body := decodeBody(t, resp)
	if _, ok := body["user"]; !ok {
		t.Errorf("Missing user object: %v", body)
	}
}

func TestAuth_LoginBadCredentials(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "victim@example.com", "password123")

	// Wrong password and unknown email must return the exact same body, so
	// a caller cannot probe which addresses are registered
	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"wrong password", map[string]string{"email": "victim@example.com", "password": "wrongpass1"}},
		{"unknown email", map[string]string{"email": "ghost@example.com", "password": "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := app.request(t, http.MethodPost, "/auth/login", tt.payload)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("Returned %d, want 401", resp.StatusCode)
			}
			body := decodeBody(t, resp)
			if body["error"] != "Invalid email or password" {
				t.Errorf("error = %v, want the generic credential message", body["error"])
			}
			if body["code"] != "AUTHENTICATION_ERROR" {
				t.Errorf("code = %v, want AUTHENTICATION_ERROR", body["code"])
			}
		})
	}
}

func TestAuth_Me(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "me@example.com", "password123")

	resp := app.request(t, http.MethodGet, "/auth/me", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Me returned %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("Missing user object: %v", body)
	}
	if user["email"] != "me@example.com" {
		t.Errorf("email = %v, want me@example.com", user["email"])
	}

	// The profile carries the subscription summary
	sub, ok := user["subscription"].(map[string]interface{})
	if !ok {
		t.Fatalf("Missing subscription summary: %v", user)
	}
	if sub["tier"] != "free" {
		t.Errorf("tier = %v, want free", sub["tier"])
	}
	if sub["csvUploadsThisMonth"] != float64(0) {
		t.Errorf("csvUploadsThisMonth = %v, want 0", sub["csvUploadsThisMonth"])
	}
}

func TestAuth_MeWithoutSession(t *testing.T) {
	app := newTestApp(t)

	resp := app.request(t, http.MethodGet, "/auth/me", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("Me returned %d, want 401", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["code"] != "AUTHENTICATION_ERROR" {
		t.Errorf("code = %v, want AUTHENTICATION_ERROR", body["code"])
	}
}

func TestAuth_Logout(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "bye@example.com", "password123")

	resp := app.request(t, http.MethodPost, "/auth/logout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Logout returned %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	cookie := sessionCookie(resp)
	if cookie == nil {
		t.Fatal("Expected a clearing session cookie")
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("MaxAge = %d, want negative to clear the cookie", cookie.MaxAge)
	}

	// The jar honored the clear, so the session is gone
	resp = app.request(t, http.MethodGet, "/auth/me", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Me after logout returned %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAuth_DeleteAccount(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "gone@example.com", "password123")

	resp := app.request(t, http.MethodDelete, "/auth/me", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Delete returned %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	// The account cannot log in again
	resp = app.request(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "gone@example.com",
		"password": "password123",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Login after delete returned %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()

	// But the address is free for a fresh registration
	app.signup(t, "gone@example.com", "password456")
}
