package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/fraudlens/fraudlens/internal/domain/cases"
	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/testutil"
)

type caseTestEnv struct {
	svc      cases.Service
	repo     *testutil.MockCaseRepository
	subs     *testutil.MockSubscriptionRepository
	uploader *testutil.MockUploader
}

func newCaseTestEnv() *caseTestEnv {
	repo := testutil.NewMockCaseRepository()
	subs := testutil.NewMockSubscriptionRepository()
	uploader := testutil.NewMockUploader()
	log := logger.New(logger.Config{Level: "error", Format: "console"})
	return &caseTestEnv{
		svc:      NewCaseService(repo, subs, uploader, log),
		repo:     repo,
		subs:     subs,
		uploader: uploader,
	}
}

func TestCaseService_Create(t *testing.T) {
	env := newCaseTestEnv()
	ctx := context.Background()

	desc := "October invoices"
	c, err := env.svc.Create(ctx, "acct-1", "Invoice review", &desc)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.Status != cases.StatusPending {
		t.Errorf("Status = %q, want pending", c.Status)
	}
	if c.AccountID != "acct-1" {
		t.Errorf("AccountID = %q, want acct-1", c.AccountID)
	}
}

func TestCaseService_Upload(t *testing.T) {
	env := newCaseTestEnv()
	ctx := context.Background()
	env.subs.Seed("acct-1", subscription.TierFree, 0)

	c, err := env.svc.Create(ctx, "acct-1", "Upload case", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	data := "date,amount\n2026-01-02,99.50\n"
	got, err := env.svc.Upload(ctx, "acct-1", c.ID, "transactions.csv", strings.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if got.FileURL == nil || *got.FileURL == "" {
		t.Fatal("Expected a file URL after upload")
	}

	// Stored under account/case scoped key
	key := "acct-1/" + c.ID + "/transactions.csv"
	if string(env.uploader.Uploads[key]) != data {
		t.Errorf("Stored bytes under %q do not match upload", key)
	}

	// One upload consumed
	sub, _ := env.subs.GetByAccount(ctx, "acct-1")
	if sub.CSVUploadsThisMonth != 1 {
		t.Errorf("CSVUploadsThisMonth = %d, want 1", sub.CSVUploadsThisMonth)
	}
}

func TestCaseService_UploadQuota(t *testing.T) {
	env := newCaseTestEnv()
	ctx := context.Background()

	// Free tier exhausted
	env.subs.Seed("acct-free", subscription.TierFree, 10)
	c, err := env.svc.Create(ctx, "acct-free", "Over quota", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = env.svc.Upload(ctx, "acct-free", c.ID, "f.csv", strings.NewReader("x"), 1)
	appErr := errors.AsAppError(err)
	if appErr == nil || appErr.Code != errors.CodeForbidden {
		t.Fatalf("Expected forbidden, got %v", err)
	}
	if !strings.Contains(appErr.Message, "limit of 10") {
		t.Errorf("Message = %q, want the limit named", appErr.Message)
	}

	// No usage consumed and nothing stored on a rejected upload
	sub, _ := env.subs.GetByAccount(ctx, "acct-free")
	if sub.CSVUploadsThisMonth != 10 {
		t.Errorf("CSVUploadsThisMonth = %d, want 10", sub.CSVUploadsThisMonth)
	}
	if len(env.uploader.Uploads) != 0 {
		t.Errorf("Expected no stored files, got %d", len(env.uploader.Uploads))
	}

	// Pro tier is unlimited
	env.subs.Seed("acct-pro", subscription.TierPro, 100000)
	c, err = env.svc.Create(ctx, "acct-pro", "High volume", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := env.svc.Upload(ctx, "acct-pro", c.ID, "f.csv", strings.NewReader("x"), 1); err != nil {
		t.Errorf("Pro upload failed: %v", err)
	}
}

func TestCaseService_UploadFilenameSanitized(t *testing.T) {
	env := newCaseTestEnv()
	ctx := context.Background()
	env.subs.Seed("acct-1", subscription.TierFree, 0)

	c, err := env.svc.Create(ctx, "acct-1", "Hostile filename", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := env.svc.Upload(ctx, "acct-1", c.ID, "../../etc/passwd", strings.NewReader("x"), 1); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	for key := range env.uploader.Uploads {
		if strings.Contains(key, "..") {
			t.Errorf("Stored key %q contains a path traversal component", key)
		}
		if !strings.HasPrefix(key, "acct-1/"+c.ID+"/") {
			t.Errorf("Stored key %q escapes the case prefix", key)
		}
	}
}

func TestCaseService_UpdateStatus(t *testing.T) {
	env := newCaseTestEnv()
	ctx := context.Background()

	tests := []struct {
		name     string
		from     string
		to       string
		wantCode string
	}{
		{"pending to processing", cases.StatusPending, cases.StatusProcessing, ""},
		{"pending to completed", cases.StatusPending, cases.StatusCompleted, ""},
		{"processing to failed", cases.StatusProcessing, cases.StatusFailed, ""},
		{"completed is terminal", cases.StatusCompleted, cases.StatusProcessing, errors.CodeConflict},
		{"failed is terminal", cases.StatusFailed, cases.StatusPending, errors.CodeConflict},
		{"unknown status", cases.StatusPending, "archived", errors.CodeBadRequest},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := env.svc.Create(ctx, "acct-1", fmt.Sprintf("Case %d", i), nil)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if tt.from != cases.StatusPending {
				if err := env.repo.UpdateStatus(ctx, "acct-1", c.ID, tt.from, nil); err != nil {
					t.Fatalf("Seeding status failed: %v", err)
				}
			}

			got, err := env.svc.UpdateStatus(ctx, "acct-1", c.ID, tt.to, nil)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("UpdateStatus failed: %v", err)
				}
				if got.Status != tt.to {
					t.Errorf("Status = %q, want %q", got.Status, tt.to)
				}
				return
			}

			appErr := errors.AsAppError(err)
			if appErr == nil || appErr.Code != tt.wantCode {
				t.Errorf("Expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestCaseService_UpdateStatusWithResults(t *testing.T) {
	env := newCaseTestEnv()
	ctx := context.Background()

	c, err := env.svc.Create(ctx, "acct-1", "Results case", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	results := json.RawMessage(`{"anomalies":12}`)
	got, err := env.svc.UpdateStatus(ctx, "acct-1", c.ID, cases.StatusCompleted, results)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if string(got.Results) != `{"anomalies":12}` {
		t.Errorf("Results = %s", got.Results)
	}
}

func TestCaseService_Delete(t *testing.T) {
	env := newCaseTestEnv()
	ctx := context.Background()

	c, err := env.svc.Create(ctx, "acct-1", "Temp case", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := env.svc.Delete(ctx, "acct-1", c.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := env.svc.GetByID(ctx, "acct-1", c.ID); !errors.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
}
