package components

import (
	"lounge-scheduler/internal/handler"
	"lounge-scheduler/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMachineHandler,
		api.NewBookingHandler,
		api.NewOfferHandler,
		api.NewSubscriptionHandler,
		api.NewReportHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
