package response

import (
	"time"

	"lounge-scheduler/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID  `json:"id"`
	MachineID      uuid.UUID  `json:"machineId"`
	Customer       string     `json:"customer"`
	StartTime      time.Time  `json:"startTime"`
	EndTime        time.Time  `json:"endTime"`
	Status         string     `json:"status"`
	PriceCents     int64      `json:"priceCents"`
	OfferID        *uuid.UUID `json:"offerId,omitempty"`
	SubscriptionID *uuid.UUID `json:"subscriptionId,omitempty"`
	StartedAt      *time.Time `json:"startedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID(),
		MachineID:      b.MachineID(),
		Customer:       b.Customer(),
		StartTime:      b.Window().Start(),
		EndTime:        b.Window().End(),
		Status:         b.Status().String(),
		PriceCents:     b.Price().Cents(),
		OfferID:        b.OfferID(),
		SubscriptionID: b.SubscriptionID(),
		StartedAt:      b.StartedAt(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}

func FromBookings(bs []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = FromBooking(b)
	}
	return out
}
