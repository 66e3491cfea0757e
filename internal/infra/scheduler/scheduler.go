// Package scheduler runs the hold reaper on a cron cadence through asynq.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/reaper"

	"github.com/hibiken/asynq"
)

const TaskReapExpiredHolds = "booking:reap_expired_holds"

type HoldReaper interface {
	Run(ctx context.Context) (reaper.Result, error)
}

// ReaperScheduler enqueues the reap task on the cron schedule and processes it.
// Several replicas may run one each; the task is unique while pending and the
// reaper's conditional delete makes overlapping sweeps harmless.
type ReaperScheduler struct {
	scheduler *asynq.Scheduler
	server    *asynq.Server
	cronSpec  string
	reaper    HoldReaper
	logger    *slog.Logger
}

func NewReaperScheduler(cfg config.ReaperConfig, redisCfg config.RedisConfig, r HoldReaper, logger *slog.Logger) *ReaperScheduler {
	conn := asynq.RedisClientOpt{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	}
	adapter := &slogAdapter{logger: logger.With("component", "asynq")}

	return &ReaperScheduler{
		scheduler: asynq.NewScheduler(conn, &asynq.SchedulerOpts{
			Logger:   adapter,
			Location: time.UTC,
		}),
		server: asynq.NewServer(conn, asynq.Config{
			Concurrency: max(cfg.Concurrency, 1),
			Logger:      adapter,
			Queues:      map[string]int{"default": 1},
		}),
		cronSpec: cfg.CronSpec,
		reaper:   r,
		logger:   logger,
	}
}

func NewReapTask() *asynq.Task {
	return asynq.NewTask(TaskReapExpiredHolds, nil,
		asynq.Unique(time.Minute),
		asynq.Timeout(time.Minute),
		asynq.MaxRetry(3),
	)
}

// Start registers the cron entry and begins processing. It does not block.
func (s *ReaperScheduler) Start() error {
	entryID, err := s.scheduler.Register(s.cronSpec, NewReapTask())
	if err != nil {
		return errs.Wrapf(err, "failed to register %s on %q", TaskReapExpiredHolds, s.cronSpec)
	}
	if err := s.scheduler.Start(); err != nil {
		return errs.Wrap(err, "failed to start asynq scheduler")
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskReapExpiredHolds, s.HandleReap)
	if err := s.server.Start(mux); err != nil {
		s.scheduler.Shutdown()
		return errs.Wrap(err, "failed to start asynq server")
	}

	s.logger.Info("reaper scheduled", "cron", s.cronSpec, "entry_id", entryID)
	return nil
}

func (s *ReaperScheduler) Stop() {
	s.scheduler.Shutdown()
	s.server.Shutdown()
}

// HandleReap errors go back to asynq, which retries the task.
func (s *ReaperScheduler) HandleReap(ctx context.Context, _ *asynq.Task) error {
	res, err := s.reaper.Run(ctx)
	if err != nil {
		return errs.Wrap(err, "reap expired holds")
	}
	s.logger.DebugContext(ctx, "reap task done", "reclaimed", len(res.Reclaimed))
	return nil
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Debug(args ...any) { a.logger.Debug(fmt.Sprint(args...)) }
func (a *slogAdapter) Info(args ...any)  { a.logger.Info(fmt.Sprint(args...)) }
func (a *slogAdapter) Warn(args ...any)  { a.logger.Warn(fmt.Sprint(args...)) }
func (a *slogAdapter) Error(args ...any) { a.logger.Error(fmt.Sprint(args...)) }
func (a *slogAdapter) Fatal(args ...any) { a.logger.Error(fmt.Sprint(args...), "fatal", true) }
