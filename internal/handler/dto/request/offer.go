package request

import "time"

type CreateOfferRequest struct {
	Name           string     `json:"name" binding:"required,max=200"`
	Category       string     `json:"category" binding:"required,oneof=time-based exclusive standing"`
	ValidFrom      *time.Time `json:"validFrom,omitempty"`
	ValidTo        *time.Time `json:"validTo,omitempty"`
	MembershipType string     `json:"membershipType,omitempty" binding:"max=50"`
	AmountOffCents *int64     `json:"amountOffCents,omitempty" binding:"omitempty,min=0"`
	PercentOff     *float64   `json:"percentOff,omitempty" binding:"omitempty,gt=0,lte=100"`
}
