package bootstrap

import (
	"log/slog"

	"lounge-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the settings that change runtime behaviour.
// Credentials are never logged.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"storage_driver", cfg.Storage.Driver,
		"broker_enabled", cfg.Broker.URL != "",
		"expiry_threshold", cfg.Expiry.Threshold,
		"expiry_interval", cfg.Expiry.Interval,
		"expiry_runner_disabled", cfg.Expiry.Disabled,
		"report_cache_ttl", cfg.Report.CacheTTL,
		"pricing_file", cfg.Pricing.File,
		"rate_limit_rps", cfg.RateLimit.RequestsPerSecond)
}
