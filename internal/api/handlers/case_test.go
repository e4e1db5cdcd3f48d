package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fraudlens/fraudlens/internal/api/middleware"
	"github.com/fraudlens/fraudlens/internal/domain/cases"
	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/validator"
	"github.com/fraudlens/fraudlens/internal/services"
	"github.com/fraudlens/fraudlens/internal/testutil"
)

func newCaseTestHandler() (*CaseHandler, *testutil.MockCaseRepository, *testutil.MockSubscriptionRepository) {
	mockRepo := testutil.NewMockCaseRepository()
	mockSubs := testutil.NewMockSubscriptionRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewCaseService(mockRepo, mockSubs, testutil.NewMockUploader(), log)
	return NewCaseHandler(service, log, validator.New()), mockRepo, mockSubs
}

func withAccount(req *http.Request, accountID string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.AccountIDKey, accountID))
}

func TestCaseHandler_Create(t *testing.T) {
	handler, _, mockSubs := newCaseTestHandler()
	mockSubs.Seed("acct-1", subscription.TierFree, 0)

	tests := []struct {
		name           string
		payload        string
		expectedStatus int
	}{
		{
			name:           "valid case",
			payload:        `{"name":"Vendor audit","description":"Q3 review"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			payload:        `{"description":"no name"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			payload:        `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/cases", bytes.NewBufferString(tt.payload))
			req = withAccount(req, "acct-1")
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tt.expectedStatus)
			}

			if rr.Code == http.StatusCreated {
				var response map[string]interface{}
				if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
					t.Errorf("failed to decode response: %v", err)
				}
				if _, ok := response["case"]; !ok {
					t.Errorf("response missing case object: %v", response)
				}
			}
		})
	}
}

func TestCaseHandler_CreateWithoutIdentity(t *testing.T) {
	handler, _, _ := newCaseTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cases", bytes.NewBufferString(`{"name":"x"}`))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusUnauthorized)
	}
}

func TestCaseHandler_List(t *testing.T) {
	handler, mockRepo, _ := newCaseTestHandler()

	ctx := context.Background()
	for _, name := range []string{"First", "Second", "Third"} {
		if err := mockRepo.Create(ctx, &cases.Case{
			AccountID: "acct-1",
			Name:      name,
			Status:    cases.StatusPending,
		}); err != nil {
			t.Fatalf("failed to seed case: %v", err)
		}
	}

	tests := []struct {
		name          string
		queryParams   string
		expectedCount int
	}{
		{"default pagination", "", 3},
		{"explicit page size", "?page=1&pageSize=2", 2},
		{"second page", "?page=2&pageSize=2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cases"+tt.queryParams, nil)
			req = withAccount(req, "acct-1")
			rr := httptest.NewRecorder()

			handler.List(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
			}

			var response struct {
				Cases []json.RawMessage `json:"cases"`
				Total int64             `json:"total"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Total != 3 {
				t.Errorf("total = %d, want 3", response.Total)
			}
			if len(response.Cases) != tt.expectedCount {
				t.Errorf("got %d cases, want %d", len(response.Cases), tt.expectedCount)
			}
		})
	}
}
