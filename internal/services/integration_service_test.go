package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fraudlens/fraudlens/internal/domain/integration"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/testutil"
)

func newIntegrationTestService(repo *testutil.MockIntegrationRepository) integration.Service {
	log := logger.New(logger.Config{Level: "error", Format: "console"})
	return NewIntegrationService(repo, log)
}

func TestIntegrationService_Create(t *testing.T) {
	repo := testutil.NewMockIntegrationRepository()
	svc := newIntegrationTestService(repo)
	ctx := context.Background()

	i, err := svc.Create(ctx, "acct-1", "Warehouse DB", integration.TypeSQL, json.RawMessage(`{"dsn":"postgres://..."}`))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !i.IsActive {
		t.Error("New integrations start active")
	}
	if i.Type != integration.TypeSQL {
		t.Errorf("Type = %q, want sql", i.Type)
	}

	// Unknown types are rejected
	_, err = svc.Create(ctx, "acct-1", "Bad", "webhook", nil)
	appErr := errors.AsAppError(err)
	if appErr == nil || appErr.Code != errors.CodeBadRequest {
		t.Errorf("Expected bad request, got %v", err)
	}
}

func TestIntegrationService_Update(t *testing.T) {
	repo := testutil.NewMockIntegrationRepository()
	svc := newIntegrationTestService(repo)
	ctx := context.Background()

	i, err := svc.Create(ctx, "acct-1", "Old", integration.TypeAPI, json.RawMessage(`{"url":"a"}`))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Partial update: only the name
	name := "Renamed"
	got, err := svc.Update(ctx, "acct-1", i.ID, &name, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("Name = %q, want Renamed", got.Name)
	}
	if string(got.Config) != `{"url":"a"}` {
		t.Errorf("Config changed unexpectedly: %s", got.Config)
	}

	// Only the config
	got, err = svc.Update(ctx, "acct-1", i.ID, nil, json.RawMessage(`{"url":"b"}`))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Name != "Renamed" || string(got.Config) != `{"url":"b"}` {
		t.Errorf("Got %q / %s", got.Name, got.Config)
	}
}

func TestIntegrationService_Deactivate(t *testing.T) {
	repo := testutil.NewMockIntegrationRepository()
	svc := newIntegrationTestService(repo)
	ctx := context.Background()

	i, err := svc.Create(ctx, "acct-1", "Feed", integration.TypeAPI, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Deactivate(ctx, "acct-1", i.ID); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	got, err := svc.GetByID(ctx, "acct-1", i.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.IsActive {
		t.Error("Expected inactive integration")
	}

	// Deactivated integrations are still listed and retrievable
	list, err := svc.List(ctx, "acct-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len(list) = %d, want 1", len(list))
	}
}

func TestIntegrationService_Delete(t *testing.T) {
	repo := testutil.NewMockIntegrationRepository()
	svc := newIntegrationTestService(repo)
	ctx := context.Background()

	i, err := svc.Create(ctx, "acct-1", "Gone soon", integration.TypeAPI, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, "acct-1", i.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, "acct-1", i.ID); !errors.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
}
