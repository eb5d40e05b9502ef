package components

import (
	"context"
	"log/slog"

	"lounge-scheduler/internal/infra/broker"
	"lounge-scheduler/internal/pkg/config"
	"lounge-scheduler/internal/usecase/expiry"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewNotificationSink,
	),
)

// NewNotificationSink publishes notices to RabbitMQ when BROKER_URL is set and
// logs them otherwise.
func NewNotificationSink(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (expiry.Sink, error) {
	if cfg.Broker.URL == "" {
		return expiry.NewLogSink(logger), nil
	}

	p, err := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return broker.NewNotificationSink(p), nil
}
