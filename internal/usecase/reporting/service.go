package reporting

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/report"
	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/pkg/clock"
	"lounge-scheduler/internal/usecase/shared"

	"github.com/patrickmn/go-cache"
)

//go:generate mockgen -destination=../../../tests/mock/reporting/service.go -package=reportingmock . Service

type Service interface {
	// Generate reports on a named period ending now. Results may be served
	// from a short-lived cache.
	Generate(ctx context.Context, period string) (*report.Metrics, error)
	GenerateRange(ctx context.Context, w timewindow.Window) (*report.Metrics, error)
}

type serviceImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	pricer report.Pricer
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService caches results for ttl. A zero ttl disables caching.
func NewService(uow shared.UnitOfWork, clk clock.Clock, pricer report.Pricer, ttl time.Duration, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if pricer == nil {
		pricer = report.QuotedPricer{}
	}
	var c *cache.Cache
	if ttl > 0 {
		c = cache.New(ttl, 2*ttl)
	}
	return &serviceImpl{
		uow:    uow,
		clock:  clk,
		pricer: pricer,
		cache:  c,
		logger: logger,
	}
}

func (s *serviceImpl) Generate(ctx context.Context, period string) (*report.Metrics, error) {
	w, err := report.ResolvePeriod(period, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return s.cached(ctx, "period:"+strings.ToLower(strings.TrimSpace(period)), w)
}

func (s *serviceImpl) GenerateRange(ctx context.Context, w timewindow.Window) (*report.Metrics, error) {
	return s.cached(ctx, "range:"+w.String(), w)
}

func (s *serviceImpl) cached(ctx context.Context, key string, w timewindow.Window) (*report.Metrics, error) {
	if s.cache != nil {
		if hit, ok := s.cache.Get(key); ok {
			return hit.(*report.Metrics), nil
		}
	}

	bookings, err := shared.RunReadOnly(ctx, s.uow, func(ctx context.Context, tx shared.Tx) ([]*booking.Booking, error) {
		bs, err := tx.Bookings().ListStartingWithin(ctx, w)
		return bs, shared.TranslateRepoErr(err, "list bookings")
	})
	if err != nil {
		return nil, err
	}

	m := report.Aggregate(bookings, w, s.pricer)
	s.logger.Debug("report generated",
		"key", key,
		"bookings", m.TotalBookings,
		"revenue_cents", m.TotalRevenue.Cents())

	if s.cache != nil {
		s.cache.SetDefault(key, &m)
	}
	return &m, nil
}
