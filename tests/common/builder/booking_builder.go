//go:build unit || e2e

package builder

import (
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/timewindow"
	reqdto "lounge-scheduler/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	MachineID      uuid.UUID
	Customer       string
	Start          time.Time
	End            time.Time
	Status         booking.Status
	PriceCents     int64
	OfferID        *uuid.UUID
	SubscriptionID *uuid.UUID
	StartedAt      *time.Time
	Now            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         uuid.New(),
		MachineID:  uuid.New(),
		Customer:   "kai@example.com",
		Start:      now.Add(2 * time.Hour),
		End:        now.Add(3 * time.Hour),
		Status:     booking.StatusBooked,
		PriceCents: 1000,
		Now:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	w, err := timewindow.New(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(booking.Params{
		MachineID:      b.MachineID,
		Customer:       b.Customer,
		Window:         w,
		Price:          booking.NewMoney(b.PriceCents),
		OfferID:        b.OfferID,
		SubscriptionID: b.SubscriptionID,
	}, b.Now)
}

func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.MachineID, b.Customer,
		timewindow.Reconstruct(b.Start, b.End),
		b.Status,
		booking.NewMoney(b.PriceCents),
		b.OfferID, b.SubscriptionID, b.StartedAt,
		b.Now, b.Now,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		MachineID:      b.MachineID,
		Customer:       b.Customer,
		StartTime:      b.Start,
		EndTime:        b.End,
		OfferID:        b.OfferID,
		SubscriptionID: b.SubscriptionID,
	}
}
