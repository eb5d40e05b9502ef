package components

import (
	"context"
	"log/slog"

	"lounge-scheduler/internal/pkg/clock"
	"lounge-scheduler/internal/pkg/config"
	"lounge-scheduler/internal/usecase/expiry"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartExpiryRunner),
)

// StartExpiryRunner ties the periodic expiry pass to the app lifecycle.
func StartExpiryRunner(lc fx.Lifecycle, cfg config.Config, engine expiry.Engine, clk clock.Clock, logger *slog.Logger) {
	if cfg.Expiry.Disabled {
		logger.Info("expiry runner disabled")
		return
	}
	runner := expiry.NewRunner(engine, clk, cfg.Expiry.Interval, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			runner.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return runner.Stop(ctx)
		},
	})
}
