package rates

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/freight-service/internal/metrics"
)

// Refreshable is a provider whose cached quotes can be renewed in bulk.
type Refreshable interface {
	Refresh(ctx context.Context, currencies []string) error
}

// Refresher renews cached quotes on a cron schedule.
type Refresher struct {
	provider   Refreshable
	schedule   string
	currencies []string
	cron       *cron.Cron
}

// NewRefresher creates a refresher. An empty schedule disables it.
func NewRefresher(provider Refreshable, schedule string, currencies []string) *Refresher {
	return &Refresher{
		provider:   provider,
		schedule:   schedule,
		currencies: currencies,
	}
}

// Start schedules refreshes until Stop is called. ctx bounds each refresh run.
func (r *Refresher) Start(ctx context.Context) error {
	if r.schedule == "" {
		log.Info().Msg("Exchange rate refresh schedule not set, refresher disabled")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(r.schedule, func() { r.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("invalid rates refresh schedule %q: %w", r.schedule, err)
	}
	r.cron = c
	c.Start()

	log.Info().Str("schedule", r.schedule).Strs("currencies", r.currencies).Msg("Exchange rate refresher started")
	return nil
}

// RunOnce refreshes every tracked currency now.
func (r *Refresher) RunOnce(ctx context.Context) {
	err := r.provider.Refresh(ctx, r.currencies)
	metrics.RecordExchangeRateRefresh(err)
	if err != nil {
		log.Warn().Err(err).Msg("Exchange rate refresh incomplete")
		return
	}
	log.Debug().Int("currencies", len(r.currencies)).Msg("Exchange rates refreshed")
}

// Stop halts the schedule and waits for a running refresh to finish.
func (r *Refresher) Stop(ctx context.Context) {
	if r.cron == nil {
		return
	}
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
	}
}
