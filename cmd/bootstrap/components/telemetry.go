package components

import (
	"lounge-scheduler/internal/telemetry"
	"lounge-scheduler/internal/usecase/expiry"
	"lounge-scheduler/internal/usecase/scheduling"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		telemetry.NewMetrics,
		func(m *telemetry.Metrics) scheduling.Observer { return m },
		func(m *telemetry.Metrics) expiry.Observer { return m },
	),
)
