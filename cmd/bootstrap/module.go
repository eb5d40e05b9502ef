package bootstrap

import (
	"lounge-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.TelemetryModule,
	components.PersistenceModule,
	components.BrokerModule,
	components.UseCaseModule,
	components.SchedulerModule,
	components.HandlerModule,
)
