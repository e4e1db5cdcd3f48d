package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
)

// UsageResetter zeroes every subscription's monthly upload counter on a cron
// schedule, normally at midnight UTC on the first of each month.
type UsageResetter struct {
	subscriptionService subscription.Service
	schedule            string
	cron                *cron.Cron
	logger              *logger.Logger
}

// NewUsageResetter creates a new usage reset worker
func NewUsageResetter(subscriptionService subscription.Service, schedule string, log *logger.Logger) *UsageResetter {
	return &UsageResetter{
		subscriptionService: subscriptionService,
		schedule:            schedule,
		cron:                cron.New(cron.WithLocation(time.UTC)),
		logger:              log,
	}
}

// Start registers the reset job and starts the scheduler
func (w *UsageResetter) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.schedule, func() {
		w.Run(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.WithFields(map[string]interface{}{
		"schedule": w.schedule,
	}).Info("Usage reset worker started")

	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (w *UsageResetter) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Info("Usage reset worker stopped")
}

// Run performs one reset pass
func (w *UsageResetter) Run(ctx context.Context) {
	n, err := w.subscriptionService.ResetAllUsage(ctx)
	if err != nil {
		w.logger.ErrorWithErr(err, "Usage reset pass failed")
		return
	}

	w.logger.WithFields(map[string]interface{}{
		"subscriptions": n,
	}).Info("Usage reset pass completed")
}
