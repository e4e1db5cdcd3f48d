package worker

import (
	"context"
	"testing"

	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/services"
	"github.com/fraudlens/fraudlens/internal/testutil"
)

func TestUsageResetter_Run(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	repo.Seed("acct-1", subscription.TierFree, 8)
	repo.Seed("acct-2", subscription.TierStandard, 33)

	log := logger.New(logger.Config{Level: "error", Format: "console"})
	svc := services.NewSubscriptionService(repo, log)

	w := NewUsageResetter(svc, "0 0 1 * *", log)
	w.Run(context.Background())

	for _, id := range []string{"acct-1", "acct-2"} {
		sub, err := repo.GetByAccount(context.Background(), id)
		if err != nil {
			t.Fatalf("GetByAccount failed: %v", err)
		}
		if sub.CSVUploadsThisMonth != 0 {
			t.Errorf("%s: CSVUploadsThisMonth = %d, want 0", id, sub.CSVUploadsThisMonth)
		}
	}
}

func TestUsageResetter_StartStop(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	log := logger.New(logger.Config{Level: "error", Format: "console"})
	svc := services.NewSubscriptionService(repo, log)

	w := NewUsageResetter(svc, "0 0 1 * *", log)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	w.Stop()
}

func TestUsageResetter_BadSchedule(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	log := logger.New(logger.Config{Level: "error", Format: "console"})
	svc := services.NewSubscriptionService(repo, log)

	w := NewUsageResetter(svc, "not a cron expression", log)
	if err := w.Start(context.Background()); err == nil {
		w.Stop()
		t.Fatal("Expected an error for an invalid schedule")
	}
}
