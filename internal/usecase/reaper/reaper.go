package reaper

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const deleteBatchSize = 500

type HoldStore interface {
	// ListExpiredHolds returns held bookings with hold_expires_at < now.
	ListExpiredHolds(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	// DeleteExpiredHolds deletes those of ids that are still held and expired
	// at now, and returns the ids actually deleted.
	DeleteExpiredHolds(ctx context.Context, ids []uuid.UUID, now time.Time) ([]uuid.UUID, error)
}

type Result struct {
	Reclaimed []uuid.UUID
}

// Reaper hard-deletes holds that expired without confirmation, returning
// their capacity.
type Reaper struct {
	store   HoldStore
	clock   clock.Clock
	metrics *metrics.Booking
	logger  *slog.Logger
}

func New(store HoldStore, clk clock.Clock, m *metrics.Booking, logger *slog.Logger) *Reaper {
	return &Reaper{store: store, clock: clk, metrics: m, logger: logger}
}

// Run performs one sweep. A hold expiring exactly at now is kept. Storage
// errors are logged and returned so the scheduler applies its retry policy.
func (r *Reaper) Run(ctx context.Context) (Result, error) {
	now := r.clock.Now()

	expired, err := r.store.ListExpiredHolds(ctx, now)
	if err != nil {
		r.fail("list expired holds", err)
		return Result{}, errs.Wrap(err, "list expired holds")
	}
	if len(expired) == 0 {
		r.metrics.ReaperRuns.WithLabelValues("noop").Inc()
		return Result{}, nil
	}

	var reclaimed []uuid.UUID
	for _, batch := range lo.Chunk(expired, deleteBatchSize) {
		deleted, err := r.store.DeleteExpiredHolds(ctx, batch, now)
		if err != nil {
			r.fail("delete expired holds", err, "deleted_so_far", len(reclaimed), "batch", len(batch))
			return Result{Reclaimed: reclaimed}, errs.Wrapf(err, "delete %d expired holds", len(batch))
		}
		reclaimed = append(reclaimed, deleted...)
	}

	// Holds confirmed between list and delete are skipped by the conditional
	// delete and show up here.
	if skipped, _ := lo.Difference(expired, reclaimed); len(skipped) > 0 {
		r.logger.Info("expired holds changed before deletion", "count", len(skipped), "ids", skipped)
	}

	r.metrics.HoldsReclaimed.Add(float64(len(reclaimed)))
	r.metrics.ReaperRuns.WithLabelValues("reclaimed").Inc()
	r.logger.Info("reclaimed expired holds",
		"count", len(reclaimed),
		"ids", reclaimed,
		"now", now)
	return Result{Reclaimed: reclaimed}, nil
}

func (r *Reaper) fail(msg string, err error, args ...any) {
	r.metrics.ReaperRuns.WithLabelValues("error").Inc()
	r.logger.Error("reaper: "+msg, append([]any{"error", err.Error()}, args...)...)
}
