package response

import (
	"time"

	"lounge-scheduler/internal/usecase/offers"

	"github.com/google/uuid"
)

type OfferResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	ValidFrom      *time.Time `json:"validFrom,omitempty"`
	ValidTo        *time.Time `json:"validTo,omitempty"`
	MembershipType string     `json:"membershipType,omitempty"`
	AmountOffCents *int64     `json:"amountOffCents,omitempty"`
	PercentOff     *float64   `json:"percentOff,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	RevokedAt      *time.Time `json:"revokedAt,omitempty"`
}

func FromOfferView(v *offers.OfferView) *OfferResponse {
	o := v.Offer
	return &OfferResponse{
		ID:             o.ID(),
		Name:           o.Name(),
		Category:       o.Category().String(),
		ValidFrom:      o.ValidFrom(),
		ValidTo:        o.ValidTo(),
		MembershipType: o.MembershipType(),
		AmountOffCents: o.Discount().AmountOffCents(),
		PercentOff:     o.Discount().PercentOff(),
		Status:         v.Status.String(),
		CreatedAt:      o.CreatedAt(),
		RevokedAt:      o.RevokedAt(),
	}
}

func FromOfferViews(vs []*offers.OfferView) []*OfferResponse {
	out := make([]*OfferResponse, len(vs))
	for i, v := range vs {
		out[i] = FromOfferView(v)
	}
	return out
}
