//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := builder.NewBookingBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, b)
		})
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b, err := bb.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusBooked, b.Status())
		assert.Equal(t, bb.MachineID, b.MachineID())
		assert.Equal(t, bb.Now, b.CreatedAt())
		assert.True(t, b.IsCommitted())
		assert.True(t, b.IsActive())
		assert.Nil(t, b.StartedAt())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "customer trimmed", mutate: func(b *builder.BookingBuilder) { b.Customer = "  kai  " }},
			{name: "blank customer", mutate: func(b *builder.BookingBuilder) { b.Customer = " " }, errIs: booking.ErrEmptyCustomer},
			{name: "missing machine", mutate: func(b *builder.BookingBuilder) { b.MachineID = uuid.Nil }, errIs: booking.ErrMissingMachineID},
			{name: "negative price", mutate: func(b *builder.BookingBuilder) { b.PriceCents = -1 }, errIs: booking.ErrNegativePrice},
			{name: "start in the past", mutate: func(b *builder.BookingBuilder) {
				b.Start = b.Now.Add(-time.Minute)
			}, errIs: errs.ErrInvalidWindow},
			{name: "start exactly now", mutate: func(b *builder.BookingBuilder) {
				b.Start = b.Now
			}},
		})
	})
}

func TestBookingLifecycle(t *testing.T) {
	t.Run("cancel only while booked", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		now := b.CreatedAt().Add(time.Minute)

		require.NoError(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.IsCommitted())
		assert.Equal(t, now, b.UpdatedAt())

		err = b.Cancel(now)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("complete only at or after window end", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		end := b.Window().End()

		err = b.Complete(end.Add(-time.Second))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, booking.StatusBooked, b.Status())

		require.NoError(t, b.Complete(end))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.True(t, b.IsCommitted())

		err = b.Cancel(end.Add(time.Minute))
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition), "completed bookings are immutable")
	})

	t.Run("begin within the window once", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		w := b.Window()

		err = b.Begin(w.Start().Add(-time.Second))
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))

		require.NoError(t, b.Begin(w.Start()))
		require.NotNil(t, b.StartedAt())
		assert.Equal(t, w.Start(), *b.StartedAt())

		err = b.Begin(w.Start().Add(time.Minute))
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))

		err = b.Begin(w.End())
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})
}

func TestHourlyPriceCalculator(t *testing.T) {
	pc := booking.NewHourlyPriceCalculator(1000, map[machine.Category]int64{
		machine.CategoryVR: 2400,
	})
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		category machine.Category
		duration time.Duration
		want     int64
	}{
		{name: "default rate one hour", category: machine.CategoryPC, duration: time.Hour, want: 1000},
		{name: "default rate ninety minutes", category: machine.CategoryConsole, duration: 90 * time.Minute, want: 1500},
		{name: "category rate", category: machine.CategoryVR, duration: 30 * time.Minute, want: 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := timewindow.MustNew(start, start.Add(tt.duration))
			got := pc.CalculatePriceCents(booking.PriceContext{Category: tt.category}, w)
			assert.Equal(t, tt.want, got)
		})
	}
}
