package components

import (
	"log/slog"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/pkg/clock"
	"lounge-scheduler/internal/pkg/config"
	"lounge-scheduler/internal/usecase/expiry"
	"lounge-scheduler/internal/usecase/offers"
	"lounge-scheduler/internal/usecase/reporting"
	"lounge-scheduler/internal/usecase/scheduling"
	"lounge-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		scheduling.NewAllocator,
		offers.NewService,
		NewExpiryEngine,
		NewReportingService,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config) (*booking.HourlyPriceCalculator, error) {
			return config.LoadPriceCalculator(cfg.Pricing)
		},
		fx.As(new(booking.PriceCalculator)),
	),
)

func NewExpiryEngine(
	uow shared.UnitOfWork,
	clk clock.Clock,
	sink expiry.Sink,
	observer expiry.Observer,
	cfg config.Config,
	logger *slog.Logger,
) expiry.Engine {
	return expiry.NewEngine(uow, clk, sink, observer, cfg.Expiry.Threshold, logger)
}

func NewReportingService(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *slog.Logger) reporting.Service {
	return reporting.NewService(uow, clk, nil, cfg.Report.CacheTTL, logger)
}
