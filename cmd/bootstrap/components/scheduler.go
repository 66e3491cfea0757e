package components

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra/scheduler"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/reaper"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartReaper),
)

func StartReaper(lc fx.Lifecycle, cfg config.Config, r *reaper.Reaper, logger *slog.Logger) {
	if !cfg.Reaper.Enabled {
		logger.Info("hold reaper disabled")
		return
	}

	s := scheduler.NewReaperScheduler(cfg.Reaper, cfg.Redis, r, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("hold reaper scheduled", "cron", cfg.Reaper.CronSpec)
			return s.Start()
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
