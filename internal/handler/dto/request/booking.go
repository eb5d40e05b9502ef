package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	MachineID      uuid.UUID  `json:"machineId" binding:"required"`
	Customer       string     `json:"customer" binding:"required,max=200"`
	StartTime      time.Time  `json:"startTime" binding:"required"`
	EndTime        time.Time  `json:"endTime" binding:"required"`
	OfferID        *uuid.UUID `json:"offerId,omitempty"`
	SubscriptionID *uuid.UUID `json:"subscriptionId,omitempty"`
}

func (r CreateBookingRequest) GetCustomer() string {
	return strings.TrimSpace(r.Customer)
}
