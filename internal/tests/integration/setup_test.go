package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fraudlens/fraudlens/internal/api/handlers"
	"github.com/fraudlens/fraudlens/internal/api/router"
	"github.com/fraudlens/fraudlens/internal/config"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/validator"
	"github.com/fraudlens/fraudlens/internal/repository/postgres"
	"github.com/fraudlens/fraudlens/internal/services"
	"github.com/fraudlens/fraudlens/internal/testutil"
)

// testApp is a fully wired API server backed by an in-memory database and an
// in-memory file store. Its client carries a cookie jar so the session cookie
// flows like a browser's would.
type testApp struct {
	ts     *httptest.Server
	client *http.Client
}

// newTestApp builds the whole stack the way cmd/api does, with a low bcrypt
// cost to keep the suite fast
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.NewTestDB(t)
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	val := validator.New()

	cfg := &config.Config{
		Server: config.ServerConfig{
			FrontendURL: "http://localhost:5173",
			Environment: "test",
		},
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret-key-for-testing-only",
			SessionTTL: time.Hour,
			BCryptCost: 4,
		},
	}

	accountRepo := postgres.NewAccountRepository(db)
	caseRepo := postgres.NewCaseRepository(db)
	integrationRepo := postgres.NewIntegrationRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)

	authService := services.NewAuthService(accountRepo, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, cfg.Auth.BCryptCost, log)
	accountService := services.NewAccountService(accountRepo, log)
	caseService := services.NewCaseService(caseRepo, subscriptionRepo, testutil.NewMockUploader(), log)
	integrationService := services.NewIntegrationService(integrationRepo, log)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, log)

	h := &router.Handlers{
		Health:       handlers.NewHealthHandler(db, log),
		Auth:         handlers.NewAuthHandler(authService, accountService, subscriptionService, cfg, log, val),
		Case:         handlers.NewCaseHandler(caseService, log, val),
		Integration:  handlers.NewIntegrationHandler(integrationService, log, val),
		Subscription: handlers.NewSubscriptionHandler(subscriptionService, log, val),
	}

	ts := httptest.NewServer(router.New(cfg, log, h))
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}

	return &testApp{
		ts:     ts,
		client: &http.Client{Jar: jar},
	}
}

// newTestAppSession returns a second client against the same server with its
// own cookie jar, simulating a different browser
func newTestAppSession(t *testing.T, a *testApp) *testApp {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	return &testApp{
		ts:     a.ts,
		client: &http.Client{Jar: jar},
	}
}

func (a *testApp) request(t *testing.T, method, path string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, a.ts.URL+path, body)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

// upload sends a multipart file upload to a case
func (a *testApp) upload(t *testing.T, caseID, filename, contents string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := io.Copy(part, strings.NewReader(contents)); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	w.Close()

	req, err := http.NewRequest(http.MethodPost, a.ts.URL+"/api/v1/cases/"+caseID+"/upload", &buf)
	if err != nil {
		t.Fatalf("Failed to build upload request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		t.Fatalf("Upload request failed: %v", err)
	}
	return resp
}

// signup registers an account and leaves its session cookie in the jar
func (a *testApp) signup(t *testing.T, email, password string) {
	t.Helper()

	resp := a.request(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    email,
		"password": password,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("Signup returned %d: %s", resp.StatusCode, b)
	}
}

// decodeBody decodes a JSON response body into a generic map
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return body
}

// sessionCookie returns the session cookie from a response, or nil
func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	return nil
}
