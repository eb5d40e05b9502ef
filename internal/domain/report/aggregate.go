package report

import (
	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/timewindow"

	"github.com/google/uuid"
)

// Pricer yields the realised price of a booking. ok is false when no price is known.
type Pricer interface {
	PriceOf(b *booking.Booking) (price booking.Money, ok bool)
}

type PricerFunc func(b *booking.Booking) (booking.Money, bool)

func (f PricerFunc) PriceOf(b *booking.Booking) (booking.Money, bool) {
	return f(b)
}

// QuotedPricer uses the price quoted at admission.
type QuotedPricer struct{}

func (QuotedPricer) PriceOf(b *booking.Booking) (booking.Money, bool) {
	return b.Price(), true
}

type MachineMetrics struct {
	Bookings  int
	Completed int
	Revenue   booking.Money
}

type Metrics struct {
	Period              timewindow.Window
	TotalBookings       int
	CompletedBookings   int
	CancelledBookings   int
	TotalRevenue        booking.Money
	AverageBookingValue float64
	BookingsByStatus    map[booking.Status]int
	BookingsByMachine   map[uuid.UUID]MachineMetrics
}

// Aggregate computes metrics for bookings whose window starts inside period.
// Every status counts toward TotalBookings; only completed bookings earn revenue.
func Aggregate(bookings []*booking.Booking, period timewindow.Window, pricer Pricer) Metrics {
	if pricer == nil {
		pricer = QuotedPricer{}
	}
	m := Metrics{
		Period:            period,
		BookingsByStatus:  map[booking.Status]int{},
		BookingsByMachine: map[uuid.UUID]MachineMetrics{},
	}

	for _, b := range bookings {
		if !period.Contains(b.Window().Start()) {
			continue
		}
		m.TotalBookings++
		m.BookingsByStatus[b.Status()]++
		mm := m.BookingsByMachine[b.MachineID()]
		mm.Bookings++

		switch b.Status() {
		case booking.StatusCancelled:
			m.CancelledBookings++
		case booking.StatusCompleted:
			m.CompletedBookings++
			mm.Completed++
			if price, ok := pricer.PriceOf(b); ok {
				m.TotalRevenue = m.TotalRevenue.Add(price)
				mm.Revenue = mm.Revenue.Add(price)
			}
		}
		m.BookingsByMachine[b.MachineID()] = mm
	}

	if m.TotalBookings > 0 {
		m.AverageBookingValue = float64(m.TotalRevenue.Cents()) / float64(m.TotalBookings)
	}
	return m
}
