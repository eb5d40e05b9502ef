//go:build unit

package report_test

import (
	"testing"
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/report"
	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func bookingAt(machineID uuid.UUID, start time.Time, status booking.Status, priceCents int64) *booking.Booking {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.MachineID = machineID
		b.Start = start
		b.End = start.Add(time.Hour)
		b.Status = status
		b.PriceCents = priceCents
	}).BuildReconstructed()
}

func TestAggregate(t *testing.T) {
	period, err := report.ResolvePeriod("previous-month", now)
	require.NoError(t, err)

	m1, m2 := uuid.New(), uuid.New()
	inside := now.Add(-7 * 24 * time.Hour)

	t.Run("three completed and one cancelled", func(t *testing.T) {
		bookings := []*booking.Booking{
			bookingAt(m1, inside, booking.StatusCompleted, 100),
			bookingAt(m1, inside.Add(2*time.Hour), booking.StatusCompleted, 100),
			bookingAt(m2, inside.Add(4*time.Hour), booking.StatusCompleted, 100),
			bookingAt(m2, inside.Add(6*time.Hour), booking.StatusCancelled, 100),
		}

		got := report.Aggregate(bookings, period, report.QuotedPricer{})

		assert.Equal(t, 4, got.TotalBookings)
		assert.Equal(t, 3, got.CompletedBookings)
		assert.Equal(t, 1, got.CancelledBookings)
		assert.Equal(t, int64(300), got.TotalRevenue.Cents())
		assert.InDelta(t, 75.0, got.AverageBookingValue, 1e-9)
		assert.Equal(t, map[booking.Status]int{booking.StatusCompleted: 3, booking.StatusCancelled: 1}, got.BookingsByStatus)
		assert.Equal(t, report.MachineMetrics{Bookings: 2, Completed: 2, Revenue: booking.NewMoney(200)}, got.BookingsByMachine[m1])
		assert.Equal(t, report.MachineMetrics{Bookings: 2, Completed: 1, Revenue: booking.NewMoney(100)}, got.BookingsByMachine[m2])
	})

	t.Run("empty period has zero average", func(t *testing.T) {
		got := report.Aggregate(nil, period, nil)
		assert.Equal(t, 0, got.TotalBookings)
		assert.Zero(t, got.AverageBookingValue)
		assert.True(t, got.TotalRevenue.IsZero())
	})

	t.Run("filters on window start", func(t *testing.T) {
		bookings := []*booking.Booking{
			bookingAt(m1, period.Start().Add(-time.Hour), booking.StatusCompleted, 100),
			bookingAt(m1, period.Start(), booking.StatusCompleted, 100),
			bookingAt(m1, now.Add(-30*time.Minute), booking.StatusCompleted, 100),
			bookingAt(m1, now, booking.StatusCompleted, 100),
		}
		got := report.Aggregate(bookings, period, nil)
		assert.Equal(t, 2, got.TotalBookings)
		assert.Equal(t, int64(200), got.TotalRevenue.Cents())
	})

	t.Run("booked bookings count but earn nothing", func(t *testing.T) {
		got := report.Aggregate([]*booking.Booking{
			bookingAt(m1, inside, booking.StatusBooked, 500),
		}, period, nil)
		assert.Equal(t, 1, got.TotalBookings)
		assert.True(t, got.TotalRevenue.IsZero())
	})

	t.Run("missing price contributes nothing", func(t *testing.T) {
		priced := bookingAt(m1, inside, booking.StatusCompleted, 100)
		unpriced := bookingAt(m1, inside.Add(time.Hour), booking.StatusCompleted, 100)
		pricer := report.PricerFunc(func(b *booking.Booking) (booking.Money, bool) {
			if b.ID() == unpriced.ID() {
				return booking.Money{}, false
			}
			return b.Price(), true
		})

		got := report.Aggregate([]*booking.Booking{priced, unpriced}, period, pricer)
		assert.Equal(t, 2, got.CompletedBookings)
		assert.Equal(t, int64(100), got.TotalRevenue.Cents())
		assert.InDelta(t, 50.0, got.AverageBookingValue, 1e-9)
	})
}

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		wantStart time.Time
		errIs     error
	}{
		{name: "previous-month", wantStart: now.AddDate(0, -1, 0)},
		{name: "last-3-months", wantStart: now.AddDate(0, -3, 0)},
		{name: "last-6-months", wantStart: now.AddDate(0, -6, 0)},
		{name: "last-year", wantStart: now.AddDate(-1, 0, 0)},
		{name: " Last-Year ", wantStart: now.AddDate(-1, 0, 0)},
		{name: "last-decade", errIs: errs.ErrConfiguration},
		{name: "", errIs: errs.ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := report.ResolvePeriod(tt.name, now)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.errIs))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, timewindow.MustNew(tt.wantStart, now), w)
		})
	}

	assert.Len(t, report.Periods(), 4)
}
